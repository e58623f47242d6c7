package conditions

import (
	"github.com/KirkDiggler/pathtracker/internal/errors"
)

// Builder assembles a Condition: effect, then optional level, then term
type Builder struct {
	cond Condition
}

// NewBuilder starts a condition of the given type with a manual term
func NewBuilder(t ConditionType) *Builder {
	return &Builder{
		cond: Condition{
			Effect: Effect{Type: t},
			Term:   Manual(),
		},
	}
}

// NewPersistentDamage starts a persistent damage condition of the given damage type
func NewPersistentDamage(d DamageType) *Builder {
	return &Builder{
		cond: Condition{
			Effect: Effect{Type: PersistentDamage, DamageType: d},
			Term:   Manual(),
		},
	}
}

// WithLevel sets the severity. Only valued conditions accept one.
func (b *Builder) WithLevel(level int) *Builder {
	b.cond.Level = level
	return b
}

// WithTerm sets how the condition ends
func (b *Builder) WithTerm(term Term) *Builder {
	b.cond.Term = term
	return b
}

// Build validates and returns the condition
func (b *Builder) Build() (Condition, error) {
	if err := b.cond.Validate(); err != nil {
		return Condition{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid condition").WithMeta("effect", b.cond.Effect.String())
	}
	return b.cond, nil
}

// MustBuild is Build for conditions known to be valid. It panics otherwise.
func (b *Builder) MustBuild() Condition {
	cond, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cond
}
