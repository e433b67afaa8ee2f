package interview

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/inkpress/internal/platform/database/schema"
	"github.com/taibuivan/inkpress/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func selectClause() string {
	i := schema.CoreInterview

	return fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		i.ID, i.Title, i.PersonName, i.Designation, i.ProfileImage,
		i.Excerpt, i.InterviewImage, i.CreatedAt, i.UpdatedAt,
		i.Table,
	)
}

func scanRow(row interface{ Scan(...any) error }) (*Interview, error) {
	iv := &Interview{QA: []QA{}}

	err := row.Scan(
		&iv.ID, &iv.Title, &iv.PersonName, &iv.Designation, &iv.ProfileImage,
		&iv.Excerpt, &iv.InterviewImage, &iv.CreatedAt, &iv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return iv, nil
}

func (repository *PostgresRepository) Create(context context.Context, iv *Interview) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	i := schema.CoreInterview
	q := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`,
		i.Table,
		i.ID, i.Title, i.PersonName, i.Designation, i.ProfileImage,
		i.Excerpt, i.InterviewImage, i.CreatedAt, i.UpdatedAt,
		i.CreatedAt, i.UpdatedAt,
	)

	err = transaction.QueryRow(context, q,
		iv.ID, iv.Title, iv.PersonName, iv.Designation, iv.ProfileImage,
		iv.Excerpt, iv.InterviewImage,
	).Scan(&iv.CreatedAt, &iv.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_interview")
	}

	if err := insertQuestions(context, transaction, iv.ID, iv.QA); err != nil {
		return err
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "create_interview_commit")
	}
	return nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Interview, error) {
	q := selectClause() + fmt.Sprintf(` WHERE %s = $1`, schema.CoreInterview.ID)

	iv, err := scanRow(repository.db.QueryRow(context, q, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_interview_by_id")
	}

	if err := repository.loadQuestions(context, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Interview, int, error) {
	i := schema.CoreInterview

	conditions := ` WHERE 1=1`
	args := []any{}

	if filter.Search != "" {
		conditions += fmt.Sprintf(` AND (%s ILIKE $1 OR %s ILIKE $1)`, i.PersonName, i.Designation)
		args = append(args, "%"+filter.Search+"%")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, i.Table) + conditions
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_interviews")
	}

	q := selectClause() + conditions + fmt.Sprintf(` ORDER BY %s DESC LIMIT $%d OFFSET $%d`,
		i.CreatedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, q, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_interviews")
	}
	defer rows.Close()

	interviews := make([]*Interview, 0)
	for rows.Next() {
		iv, err := scanRow(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_interview")
		}
		interviews = append(interviews, iv)
	}
	rows.Close()

	for _, iv := range interviews {
		if err := repository.loadQuestions(context, iv); err != nil {
			return nil, 0, err
		}
	}

	return interviews, total, nil
}

func (repository *PostgresRepository) Update(context context.Context, iv *Interview) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	i := schema.CoreInterview
	q := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7,
			%s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		i.Table,
		i.Title, i.PersonName, i.Designation, i.ProfileImage, i.Excerpt, i.InterviewImage,
		i.UpdatedAt,
		i.ID,
		i.UpdatedAt,
	)

	err = transaction.QueryRow(context, q,
		iv.ID, iv.Title, iv.PersonName, iv.Designation, iv.ProfileImage,
		iv.Excerpt, iv.InterviewImage,
	).Scan(&iv.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_interview")
	}

	// Replace the Q&A section wholesale; pairs are few and unkeyed.
	iq := schema.CoreInterviewQuestion
	if _, err := transaction.Exec(context,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, iq.Table, iq.InterviewID), iv.ID); err != nil {
		return dberr.Wrap(err, "clear_interview_questions")
	}

	if err := insertQuestions(context, transaction, iv.ID, iv.QA); err != nil {
		return err
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "update_interview_commit")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	i := schema.CoreInterview
	q := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, i.Table, i.ID)

	cmd, err := repository.db.Exec(context, q, id)
	if err != nil {
		return dberr.Wrap(err, "delete_interview")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// loadQuestions hydrates the Q&A section for one interview.
func (repository *PostgresRepository) loadQuestions(context context.Context, iv *Interview) error {
	iq := schema.CoreInterviewQuestion
	q := fmt.Sprintf(`
		SELECT %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC
	`, iq.Question, iq.Answer, iq.Table, iq.InterviewID, iq.SortOrder)

	rows, err := repository.db.Query(context, q, iv.ID)
	if err != nil {
		return dberr.Wrap(err, "list_interview_questions")
	}
	defer rows.Close()

	pairs := make([]QA, 0)
	for rows.Next() {
		pair := QA{}
		if err := rows.Scan(&pair.Question, &pair.Answer); err != nil {
			return dberr.Wrap(err, "scan_interview_question")
		}
		pairs = append(pairs, pair)
	}

	iv.QA = pairs
	return nil
}

// insertQuestions writes the Q&A rows inside the caller's transaction.
func insertQuestions(context context.Context, transaction pgx.Tx, interviewID string, pairs []QA) error {
	iq := schema.CoreInterviewQuestion
	q := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)
	`, iq.Table, iq.InterviewID, iq.Question, iq.Answer, iq.SortOrder)

	for index, pair := range pairs {
		if _, err := transaction.Exec(context, q, interviewID, pair.Question, pair.Answer, index); err != nil {
			return dberr.Wrap(err, "insert_interview_question_"+strconv.Itoa(index))
		}
	}
	return nil
}
