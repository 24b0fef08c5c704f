package repository

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/globook/globook-backend/globook/internal/errs"
	"github.com/globook/globook-backend/globook/model"
)

func ptr[T any](v T) *T { return &v }

func TestListCatchesQuery(t *testing.T) {
	t.Parallel()
	query, args, err := listCatchesQuery()
	require.NoError(t, err)
	require.Empty(t, args)
	require.Equal(t,
		"SELECT c.id, b.title, a.last_name as author_last_name, a.first_name as author_first_name, "+
			"c.date, c.lat, c.lon, c.uncertainty, c.message FROM catches c "+
			"LEFT JOIN copies cp on cp.uid = c.copy_uid "+
			"LEFT JOIN books b on b.id = cp.book_id "+
			"LEFT JOIN authors a on a.id = b.author_id "+
			"ORDER BY c.id",
		query)
}

func TestFlatten(t *testing.T) {
	t.Parallel()
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		rows    []catchRow
		want    []model.CatchRecord
		wantErr error
	}{
		{
			name: "empty",
			rows: nil,
			want: []model.CatchRecord{},
		},
		{
			name: "ok",
			rows: []catchRow{{
				ID:              1,
				Title:           ptr("1984"),
				AuthorLastName:  ptr("Orwell"),
				AuthorFirstName: ptr("George"),
				Date:            date,
				Lat:             100,
				Lon:             200,
				Uncertainty:     5,
				Message:         ptr("Found at park"),
			}},
			want: []model.CatchRecord{{
				ID:              1,
				Title:           "1984",
				AuthorLastName:  "Orwell",
				AuthorFirstName: "George",
				Date:            model.NewTimestamp(date),
				Lat:             100,
				Lon:             200,
				Uncertainty:     5,
				Message:         ptr("Found at park"),
			}},
		},
		{
			name: "missing book",
			rows: []catchRow{
				{ID: 1, Title: ptr("1984"), AuthorLastName: ptr("Orwell"), AuthorFirstName: ptr("George"), Date: date},
				{ID: 2, Date: date},
			},
			wantErr: errs.ErrBrokenChain,
		},
		{
			name:    "missing author",
			rows:    []catchRow{{ID: 3, Title: ptr("Dune"), Date: date}},
			wantErr: errs.ErrBrokenChain,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := flatten(tt.rows)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			require.Equal(t, tt.want, got)
		})
	}
}
