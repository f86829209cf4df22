package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

var _ repository.IndustryRepository = (*IndustryRepo)(nil)

// IndustryRepo implementación de IndustryRepository sobre PostgreSQL.
type IndustryRepo struct {
	q Querier
}

// NewIndustryRepository construye el adaptador de persistencia para sectores.
func NewIndustryRepository(q Querier) *IndustryRepo {
	return &IndustryRepo{q: q}
}

// ListNames devuelve los nombres de todos los sectores en orden alfabético.
func (r *IndustryRepo) ListNames(ctx context.Context) ([]string, error) {
	return r.scanNames(ctx, `SELECT industry FROM industries ORDER BY industry`)
}

// ListNamesByCompany devuelve los sectores asociados a una empresa vía la tabla de unión.
func (r *IndustryRepo) ListNamesByCompany(ctx context.Context, compCode string) ([]string, error) {
	query := `
		SELECT ind.industry
		FROM industries ind
		JOIN company_industries ci ON ci.ind_code = ind.code
		WHERE ci.comp_code = $1
		ORDER BY ind.industry`
	return r.scanNames(ctx, query, compCode)
}

// GetByCode obtiene un sector por código. Devuelve nil, nil si no existe.
func (r *IndustryRepo) GetByCode(ctx context.Context, code string) (*entity.Industry, error) {
	var ind entity.Industry
	err := r.q.QueryRow(ctx,
		`SELECT code, industry FROM industries WHERE code = $1`, code,
	).Scan(&ind.Code, &ind.Industry)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get industry: %w", err)
	}
	return &ind, nil
}

// Create persiste un nuevo sector. Código duplicado -> domain.ErrDuplicate.
func (r *IndustryRepo) Create(ctx context.Context, industry *entity.Industry) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO industries (code, industry) VALUES ($1, $2)`,
		industry.Code, industry.Industry,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert industry: %w", err)
	}
	return nil
}

// AddCompany asocia empresa y sector. La validez de ambos códigos la
// garantizan las foreign keys; el error se traduce según el constraint violado.
func (r *IndustryRepo) AddCompany(ctx context.Context, indCode, compCode string) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO company_industries (comp_code, ind_code) VALUES ($1, $2)`,
		compCode, indCode,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if constraint, ok := isForeignKeyViolation(err); ok {
			if strings.Contains(constraint, "comp_code") {
				return domain.ErrCompanyCodeUnknown
			}
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert company_industry: %w", err)
	}
	return nil
}

func (r *IndustryRepo) scanNames(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan industry: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
