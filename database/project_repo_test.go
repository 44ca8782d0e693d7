package database

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gharkhoj/gharkhoj-backend/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func projectColumns() []string {
	return []string{"id", "builder_id", "name", "location", "price_range", "price_min_inr", "price_max_inr", "status"}
}

func TestProjectFilterNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   ProjectFilter
		want ProjectFilter
	}{
		{
			name: "defaults applied",
			in:   ProjectFilter{},
			want: ProjectFilter{Limit: DefaultLimit, SortOrder: "asc"},
		},
		{
			name: "limit clamped to max",
			in:   ProjectFilter{Limit: 1000},
			want: ProjectFilter{Limit: MaxLimit, SortOrder: "asc"},
		},
		{
			name: "limit below one becomes default",
			in:   ProjectFilter{Limit: -3},
			want: ProjectFilter{Limit: DefaultLimit, SortOrder: "asc"},
		},
		{
			name: "negative offset clamped",
			in:   ProjectFilter{Offset: -10},
			want: ProjectFilter{Limit: DefaultLimit, Offset: 0, SortOrder: "asc"},
		},
		{
			name: "unknown sort order falls back to asc",
			in:   ProjectFilter{SortOrder: "sideways"},
			want: ProjectFilter{Limit: DefaultLimit, SortOrder: "asc"},
		},
		{
			name: "desc preserved",
			in:   ProjectFilter{SortBy: SortByPriceMin, SortOrder: "desc"},
			want: ProjectFilter{Limit: DefaultLimit, SortBy: SortByPriceMin, SortOrder: "desc"},
		},
		{
			name: "unknown sort key dropped",
			in:   ProjectFilter{SortBy: "id; DROP TABLE projects"},
			want: ProjectFilter{Limit: DefaultLimit, SortOrder: "asc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalized())
		})
	}
}

func TestFindAndCount_DefaultListing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepo(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .* FROM "projects" ORDER BY projects\.id asc LIMIT \$\d+`).
		WillReturnRows(sqlmock.NewRows(projectColumns()).
			AddRow(1, 1, "Greenfield Phase 1", "Pune", "50L-1Cr", 5000000, 10000000, "Ongoing"))
	mock.ExpectQuery(`SELECT .* FROM "builders" WHERE "builders"\."id"`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "hq_location", "established_year"}).
			AddRow(1, "Sahyadri Constructions", "Mumbai", 1998))

	projects, total, err := repo.FindAndCount(ProjectFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, projects, 1)
	assert.Equal(t, "Greenfield Phase 1", projects[0].Name)
	assert.Equal(t, "Sahyadri Constructions", projects[0].Builder.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAndCount_BuilderNameUsesInnerJoin(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepo(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects" INNER JOIN builders ON builders\.id = projects\.builder_id WHERE LOWER\(builders\.name\) LIKE \$1`).
		WithArgs("%nandi%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT .* FROM "projects" INNER JOIN builders ON builders\.id = projects\.builder_id WHERE LOWER\(builders\.name\) LIKE \$1 ORDER BY projects\.id asc LIMIT \$\d+`).
		WillReturnRows(sqlmock.NewRows(projectColumns()))

	projects, total, err := repo.FindAndCount(ProjectFilter{BuilderName: "Nandi"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, projects)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAndCount_LocationAndStatusFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepo(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects" WHERE LOWER\(projects\.location\) LIKE \$1 AND projects\.status = \$2`).
		WithArgs("%pune%", "Completed").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT .* FROM "projects" WHERE LOWER\(projects\.location\) LIKE \$1 AND projects\.status = \$2 ORDER BY projects\.id asc LIMIT \$\d+`).
		WillReturnRows(sqlmock.NewRows(projectColumns()))

	_, _, err := repo.FindAndCount(ProjectFilter{
		Location: "Pune",
		Status:   models.StatusCompleted,
	})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAndCount_SortByPriceMinDesc(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepo(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	// Tiebreaker on projects.id must follow the primary sort key.
	mock.ExpectQuery(`SELECT .* FROM "projects" ORDER BY projects\.price_min_inr desc,projects\.id asc LIMIT \$\d+`).
		WillReturnRows(sqlmock.NewRows(projectColumns()))

	_, _, err := repo.FindAndCount(ProjectFilter{SortBy: SortByPriceMin, SortOrder: "desc"})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAndCount_SortByEstablishedYearJoinsLeft(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepo(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects" LEFT JOIN builders ON builders\.id = projects\.builder_id`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT .* FROM "projects" LEFT JOIN builders ON builders\.id = projects\.builder_id ORDER BY builders\.established_year asc,projects\.id asc LIMIT \$\d+`).
		WillReturnRows(sqlmock.NewRows(projectColumns()))

	_, _, err := repo.FindAndCount(ProjectFilter{SortBy: SortByEstablishedYear})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAndCount_CountErrorPropagates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepo(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects"`).
		WillReturnError(sql.ErrConnDone)

	_, _, err := repo.FindAndCount(ProjectFilter{})
	assert.Error(t, err)
}

func TestFindByID_NotFoundIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepo(db)

	mock.ExpectQuery(`SELECT .* FROM "projects" WHERE "projects"\."id" = \$1`).
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows(projectColumns()))

	project, err := repo.FindByID(99)
	require.NoError(t, err)
	assert.Nil(t, project)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_AttachesBuilder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepo(db)

	mock.ExpectQuery(`SELECT .* FROM "projects" WHERE "projects"\."id" = \$1`).
		WithArgs(7, 1).
		WillReturnRows(sqlmock.NewRows(projectColumns()).
			AddRow(7, 2, "Lakeside Enclave", "Whitefield", nil, nil, nil, "Ready to Move"))
	mock.ExpectQuery(`SELECT .* FROM "builders" WHERE "builders"\."id"`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "hq_location", "established_year"}).
			AddRow(2, "Nandi Developers", "Bengaluru", 2004))

	project, err := repo.FindByID(7)
	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Equal(t, models.StatusReadyToMove, project.Status)
	assert.Equal(t, "Nandi Developers", project.Builder.Name)
	assert.Nil(t, project.PriceMinINR)

	assert.NoError(t, mock.ExpectationsWereMet())
}
