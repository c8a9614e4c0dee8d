package club

import "context"

// Repository describes club persistence needs from use cases.
//
// Create, Update and Delete report ErrDuplicateName when the write collides
// with another club's soccer_name. Update and Delete return false when no
// row with the id exists at the time of the write.
type Repository interface {
	List(ctx context.Context) ([]Club, error)
	GetByID(ctx context.Context, id int64) (Club, bool, error)
	Create(ctx context.Context, draft Draft) (Club, error)
	Update(ctx context.Context, item Club) (Club, bool, error)
	Delete(ctx context.Context, id int64) (Club, bool, error)
}
