package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-registry/internal/domain/club"
	qb "github.com/riskibarqy/club-registry/internal/platform/querybuilder"
)

type ClubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) List(ctx context.Context) ([]club.Club, error) {
	query, args, err := qb.Select(clubColumns...).From(clubsTable).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select clubs query")
	}

	var rows []clubTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select clubs")
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, clubFromRow(row))
	}

	return out, nil
}

func (r *ClubRepository) GetByID(ctx context.Context, id int64) (club.Club, bool, error) {
	query, args, err := qb.Select(clubColumns...).From(clubsTable).
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return club.Club{}, false, crerr.Wrap(err, "build select club by id query")
	}

	var row clubTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, crerr.Wrapf(err, "select club id=%d", id)
	}

	return clubFromRow(row), true, nil
}

func (r *ClubRepository) Create(ctx context.Context, draft club.Draft) (club.Club, error) {
	query, args, err := qb.InsertModel(clubsTable, clubRowFromDraft(draft), clubColumns...)
	if err != nil {
		return club.Club{}, crerr.Wrap(err, "build insert club query")
	}

	var row clubTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err) {
			return club.Club{}, club.ErrDuplicateName
		}
		return club.Club{}, crerr.Wrapf(err, "insert club name=%q", draft.SoccerName)
	}

	return clubFromRow(row), nil
}

// Update writes every mutable column in one statement; a missing row yields false.
func (r *ClubRepository) Update(ctx context.Context, item club.Club) (club.Club, bool, error) {
	model := clubRowFromDraft(item.Draft())
	query, args, err := qb.Update(clubsTable).
		Set("soccer_name", model.SoccerName).
		Set("foundation_date", model.FoundationDate).
		Set("amount_titles", model.AmountTitles).
		Set("stadium", model.Stadium).
		Where(qb.Eq("id", item.ID)).
		Returning(clubColumns...).
		ToSQL()
	if err != nil {
		return club.Club{}, false, crerr.Wrap(err, "build update club query")
	}

	var row clubTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		if isUniqueViolation(err) {
			return club.Club{}, true, club.ErrDuplicateName
		}
		return club.Club{}, false, crerr.Wrapf(err, "update club id=%d", item.ID)
	}

	return clubFromRow(row), true, nil
}

func (r *ClubRepository) Delete(ctx context.Context, id int64) (club.Club, bool, error) {
	query, args, err := qb.DeleteFrom(clubsTable).
		Where(qb.Eq("id", id)).
		Returning(clubColumns...).
		ToSQL()
	if err != nil {
		return club.Club{}, false, crerr.Wrap(err, "build delete club query")
	}

	var row clubTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, crerr.Wrapf(err, "delete club id=%d", id)
	}

	return clubFromRow(row), true, nil
}
