package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contratafacil/contratafacil-api/internal/domain"
	"github.com/contratafacil/contratafacil-api/internal/domain/entity"
	"github.com/contratafacil/contratafacil-api/internal/domain/repository"
)

var _ repository.CandidateRepository = (*CandidateRepo)(nil)

// CandidateRepo implementación del puerto CandidateRepository sobre PostgreSQL.
// Toda consulta lleva business_id en el WHERE: el aislamiento entre negocios
// se garantiza a nivel de sentencia, no hay row-level security en la base.
type CandidateRepo struct {
	pool *pgxpool.Pool
}

// NewCandidateRepository construye el adaptador de persistencia para candidatos.
func NewCandidateRepository(pool *pgxpool.Pool) *CandidateRepo {
	return &CandidateRepo{pool: pool}
}

const candidateColumns = `
	id, business_id, name, email, phone, address, birth_date, position,
	experience, education, skills, experience_detail, availability,
	cv_url, photo_url, status, notes, created_at`

// Create persiste una nueva aplicación. Devuelve ErrDuplicateSubmission si
// ya existe un candidato con ese email para el mismo negocio.
func (r *CandidateRepo) Create(c *entity.Candidate) error {
	query := `
		INSERT INTO candidates (` + candidateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.BusinessID, c.Name, c.Email, c.Phone, c.Address, c.BirthDate, c.Position,
		c.Experience, c.Education, c.Skills, c.ExperienceDetail, c.Availability,
		c.CVURL, c.PhotoURL, c.Status, c.Notes, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSubmission
		}
		return fmt.Errorf("insert candidate: %w", err)
	}
	return nil
}

// GetByBusinessAndID obtiene un candidato del negocio dado; nil si no existe
// o pertenece a otro negocio.
func (r *CandidateRepo) GetByBusinessAndID(businessID, id string) (*entity.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE business_id = $1 AND id = $2`
	c, err := r.scanOne(query, businessID, id)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	return c, nil
}

// GetByBusinessAndEmail busca por email (comparación en minúsculas).
func (r *CandidateRepo) GetByBusinessAndEmail(businessID, email string) (*entity.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE business_id = $1 AND email = lower($2)`
	c, err := r.scanOne(query, businessID, email)
	if err != nil {
		return nil, fmt.Errorf("get candidate by email: %w", err)
	}
	return c, nil
}

func (r *CandidateRepo) scanOne(query string, args ...any) (*entity.Candidate, error) {
	var c entity.Candidate
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.BusinessID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.BirthDate, &c.Position,
		&c.Experience, &c.Education, &c.Skills, &c.ExperienceDetail, &c.Availability,
		&c.CVURL, &c.PhotoURL, &c.Status, &c.Notes, &c.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// filterClause arma las condiciones opcionales de estado y búsqueda.
// Los argumentos empiezan en $2 ($1 es siempre business_id).
func filterClause(f repository.CandidateFilter) (string, []any) {
	var sb strings.Builder
	var args []any
	n := 2
	if f.Status != "" {
		sb.WriteString(" AND status = $" + strconv.Itoa(n))
		args = append(args, f.Status)
		n++
	}
	if f.Search != "" {
		sb.WriteString(" AND (name ILIKE $" + strconv.Itoa(n) + " OR email ILIKE $" + strconv.Itoa(n) + ")")
		args = append(args, "%"+f.Search+"%")
		n++
	}
	return sb.String(), args
}

// ListByBusiness lista candidatos del negocio, más recientes primero.
func (r *CandidateRepo) ListByBusiness(businessID string, f repository.CandidateFilter) ([]*entity.Candidate, error) {
	clause, args := filterClause(f)
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE business_id = $1` + clause +
		` ORDER BY created_at DESC`
	n := len(args) + 2
	if f.Limit > 0 {
		query += " LIMIT $" + strconv.Itoa(n) + " OFFSET $" + strconv.Itoa(n+1)
		args = append(args, f.Limit, f.Offset)
	}
	allArgs := append([]any{businessID}, args...)

	rows, err := r.pool.Query(context.Background(), query, allArgs...)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	var list []*entity.Candidate
	for rows.Next() {
		var c entity.Candidate
		if err := rows.Scan(
			&c.ID, &c.BusinessID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.BirthDate, &c.Position,
			&c.Experience, &c.Education, &c.Skills, &c.ExperienceDetail, &c.Availability,
			&c.CVURL, &c.PhotoURL, &c.Status, &c.Notes, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// CountByBusiness cuenta candidatos del negocio aplicando los mismos filtros
// que ListByBusiness (sin límite ni offset).
func (r *CandidateRepo) CountByBusiness(businessID string, f repository.CandidateFilter) (int, error) {
	clause, args := filterClause(f)
	query := `SELECT COUNT(*) FROM candidates WHERE business_id = $1` + clause
	allArgs := append([]any{businessID}, args...)

	var total int
	if err := r.pool.QueryRow(context.Background(), query, allArgs...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count candidates: %w", err)
	}
	return total, nil
}

// UpdateStatusNotes actualiza estado y notas. Devuelve ErrNotFound si el
// candidato no existe o pertenece a otro negocio (chequeo de propiedad en
// el WHERE, obligatorio antes de mutar).
func (r *CandidateRepo) UpdateStatusNotes(businessID, id, status, notes string) error {
	query := `UPDATE candidates SET status = $3, notes = $4 WHERE business_id = $1 AND id = $2`
	cmd, err := r.pool.Exec(context.Background(), query, businessID, id, status, notes)
	if err != nil {
		return fmt.Errorf("update candidate: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un candidato del negocio; ErrNotFound si no es suyo.
func (r *CandidateRepo) Delete(businessID, id string) error {
	cmd, err := r.pool.Exec(context.Background(),
		`DELETE FROM candidates WHERE business_id = $1 AND id = $2`, businessID, id)
	if err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAllByBusiness borra todos los candidatos del negocio y devuelve
// cuántas filas se eliminaron. Irreversible, sin soft-delete.
func (r *CandidateRepo) DeleteAllByBusiness(businessID string) (int64, error) {
	cmd, err := r.pool.Exec(context.Background(),
		`DELETE FROM candidates WHERE business_id = $1`, businessID)
	if err != nil {
		return 0, fmt.Errorf("delete all candidates: %w", err)
	}
	return cmd.RowsAffected(), nil
}
