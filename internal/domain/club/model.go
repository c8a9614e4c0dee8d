package club

import "errors"

// ErrDuplicateName is returned by repositories when soccer_name is already taken.
var ErrDuplicateName = errors.New("club name already exists")

// Club is a football club record. ID is assigned by storage on create.
type Club struct {
	ID             int64
	SoccerName     string
	FoundationDate string
	AmountTitles   int64
	Stadium        *string
}

// Draft carries the caller-controlled fields of a club, used for create and full replace.
type Draft struct {
	SoccerName     string
	FoundationDate string
	AmountTitles   int64
	Stadium        *string
}

// Optional distinguishes "not supplied" from the zero value.
type Optional[T any] struct {
	Value T
	Set   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Patch is a sparse update. Only fields with Set=true are applied.
type Patch struct {
	SoccerName     Optional[string]
	FoundationDate Optional[string]
	AmountTitles   Optional[int64]
	Stadium        Optional[*string]
}

func (p Patch) IsEmpty() bool {
	return !p.SoccerName.Set && !p.FoundationDate.Set && !p.AmountTitles.Set && !p.Stadium.Set
}

func (c Club) Draft() Draft {
	return Draft{
		SoccerName:     c.SoccerName,
		FoundationDate: c.FoundationDate,
		AmountTitles:   c.AmountTitles,
		Stadium:        cloneString(c.Stadium),
	}
}

// Replace overwrites every mutable field and keeps the ID.
func (c Club) Replace(d Draft) Club {
	return Club{
		ID:             c.ID,
		SoccerName:     d.SoccerName,
		FoundationDate: d.FoundationDate,
		AmountTitles:   d.AmountTitles,
		Stadium:        cloneString(d.Stadium),
	}
}

// Apply merges p onto c, leaving unset fields untouched.
func (c Club) Apply(p Patch) Club {
	out := c
	out.Stadium = cloneString(c.Stadium)
	if p.SoccerName.Set {
		out.SoccerName = p.SoccerName.Value
	}
	if p.FoundationDate.Set {
		out.FoundationDate = p.FoundationDate.Value
	}
	if p.AmountTitles.Set {
		out.AmountTitles = p.AmountTitles.Value
	}
	if p.Stadium.Set {
		out.Stadium = cloneString(p.Stadium.Value)
	}
	return out
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	return &s
}
