package postgres

import (
	"database/sql"

	"github.com/riskibarqy/club-registry/internal/domain/club"
)

const clubsTable = "clubs"

var clubColumns = []string{"id", "soccer_name", "foundation_date", "amount_titles", "stadium"}

type clubTableModel struct {
	ID             int64          `db:"id,readonly"`
	SoccerName     string         `db:"soccer_name"`
	FoundationDate string         `db:"foundation_date"`
	AmountTitles   int64          `db:"amount_titles"`
	Stadium        sql.NullString `db:"stadium"`
}

func clubRowFromDraft(d club.Draft) clubTableModel {
	return clubTableModel{
		SoccerName:     d.SoccerName,
		FoundationDate: d.FoundationDate,
		AmountTitles:   d.AmountTitles,
		Stadium:        stringPtrToNull(d.Stadium),
	}
}

func clubFromRow(row clubTableModel) club.Club {
	return club.Club{
		ID:             row.ID,
		SoccerName:     row.SoccerName,
		FoundationDate: row.FoundationDate,
		AmountTitles:   row.AmountTitles,
		Stadium:        nullStringToPtr(row.Stadium),
	}
}
