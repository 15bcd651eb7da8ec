package crimeprep

import "context"

// Transform is a re-projection or rewrite applied to a Table.
type Transform interface {
	Name() string
	Apply(ctx context.Context, t *Table) (*Table, error)
}

// Pipeline composes a sequence of Transforms.
type Pipeline struct {
	steps []Transform
}

func NewPipeline() *Pipeline { return &Pipeline{} }

func (p *Pipeline) Add(t Transform) *Pipeline {
	p.steps = append(p.steps, t)
	return p
}

func (p *Pipeline) Run(ctx context.Context, t *Table) (*Table, error) {
	var err error
	cur := t
	for _, s := range p.steps {
		cur, err = s.Apply(ctx, cur)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
