package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestGormCategoryRepository_ListByUser_OrdersByDisplayOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "slug", "display_order"}).
		AddRow(2, 1, "Stories", "stories", 0).
		AddRow(1, 1, "Portraits", "portraits", 1)

	mock.ExpectQuery("SELECT \\* FROM `categories` WHERE user_id = \\? ORDER BY display_order ASC, id ASC").
		WithArgs(uint64(1)).
		WillReturnRows(rows)

	categories, err := repo.ListByUser(1)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	require.Equal(t, "Stories", categories[0].Name)
	require.Equal(t, "Portraits", categories[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCategoryRepository_SlugExists_ExcludesSelf(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `categories` WHERE \\(user_id = \\? AND slug = \\?\\) AND id <> \\?").
		WithArgs(uint64(1), "stories", uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	taken, err := repo.SlugExists(1, "stories", 7)
	require.NoError(t, err)
	require.False(t, taken)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Delete must remove images, sections and works before the category
// itself, all inside one transaction.
func TestGormCategoryRepository_Delete_CascadesInOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `work_section_images` WHERE work_section_id IN \\(SELECT work_sections.id FROM `work_sections` JOIN works ON works.id = work_sections.work_id WHERE works.category_id = \\?\\)").
		WithArgs(uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `work_sections` WHERE work_id IN \\(SELECT `id` FROM `works` WHERE category_id = \\?\\)").
		WithArgs(uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `works` WHERE category_id = \\?").
		WithArgs(uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `categories` WHERE `categories`.`id` = \\?").
		WithArgs(uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(3))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCategoryRepository_Delete_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `work_section_images`").
		WithArgs(uint64(3)).
		WillReturnError(gorm.ErrInvalidTransaction)
	mock.ExpectRollback()

	require.Error(t, repo.Delete(3))
	require.NoError(t, mock.ExpectationsWereMet())
}
