package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-comercios/internal/domain"
	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
	"github.com/tu-usuario/pos-comercios/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, comercio_id, name, price, sold_by_weight, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.ComercioID, product.Name, product.Price,
		product.SoldByWeight, product.Stock, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, comercio_id, name, price, sold_by_weight, stock, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ComercioID, &p.Name, &p.Price, &p.SoldByWeight, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetByComercioAndName busca por comercio y nombre con comparación case-insensitive.
func (r *ProductRepo) GetByComercioAndName(comercioID, name string) (*entity.Product, error) {
	query := `
		SELECT id, comercio_id, name, price, sold_by_weight, stock, created_at, updated_at
		FROM products WHERE comercio_id = $1 AND lower(name) = lower($2)`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, comercioID, name).Scan(
		&p.ID, &p.ComercioID, &p.Name, &p.Price, &p.SoldByWeight, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by name: %w", err)
	}
	return &p, nil
}

// ListByComercio lista productos alfabéticamente; search filtra por substring
// case-insensitive (ILIKE). limit <= 0 devuelve todo el catálogo (pantalla POS).
func (r *ProductRepo) ListByComercio(comercioID, search string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, comercio_id, name, price, sold_by_weight, stock, created_at, updated_at
		FROM products
		WHERE comercio_id = $1 AND ($2 = '' OR name ILIKE '%' || $2 || '%')
		ORDER BY name ASC`
	args := []any{comercioID, search}
	if limit > 0 {
		query += ` LIMIT $3 OFFSET $4`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.ComercioID, &p.Name, &p.Price, &p.SoldByWeight, &p.Stock,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CountByComercio cuenta los productos que matchean el filtro de búsqueda.
func (r *ProductRepo) CountByComercio(comercioID, search string) (int, error) {
	query := `
		SELECT COUNT(*) FROM products
		WHERE comercio_id = $1 AND ($2 = '' OR name ILIKE '%' || $2 || '%')`
	var total int
	if err := r.q.QueryRow(context.Background(), query, comercioID, search).Scan(&total); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// DecrementStock resta qty al stock (update relativo; puede dejarlo negativo).
// El filtro por comercio hace que un producto ajeno cuente como inexistente.
func (r *ProductRepo) DecrementStock(comercioID, id string, qty decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock - $3, updated_at = now() WHERE id = $1 AND comercio_id = $2`,
		id, comercioID, qty,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
