package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-marketplace/models"
)

const (
	usersTable    = "users"
	productsTable = "products"
	cartsTable    = "carts"
)

var (
	userColumns     = []string{"id", "username", "email", "password_hash", "role", "created_at"}
	productColumns  = []string{"id", "name", "category", "description", "price", "discount", "seller_id", "created_at"}
	cartItemColumns = []string{"id", "buyer_id", "product_id", "created_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── users ────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return toSQL(b.Insert(usersTable).
		Columns("username", "email", "password_hash", "role").
		Values(user.Username, user.Email, user.PasswordHash, user.Role).
		Suffix(returning(userColumns)))
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return toSQL(b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}))
}

// ── products ─────────────────────────────────────────────────────────────────

func buildInsertProductQuery(b sq.StatementBuilderType, p models.Product) (string, []any, error) {
	return toSQL(b.Insert(productsTable).
		Columns("name", "category", "description", "price", "discount", "seller_id").
		Values(p.Name, p.Category, p.Description, p.Price, p.Discount, p.SellerID).
		Suffix(returning(productColumns)))
}

// buildUpdateProductQuery sets only the non-nil fields of upd. The row is
// matched on both id and seller_id.
func buildUpdateProductQuery(b sq.StatementBuilderType, productID, sellerID int64, upd models.ProductUpdateRequest) (string, []any, error) {
	ub := b.Update(productsTable)
	if upd.Name != nil {
		ub = ub.Set("name", *upd.Name)
	}
	if upd.Category != nil {
		ub = ub.Set("category", *upd.Category)
	}
	if upd.Description != nil {
		ub = ub.Set("description", *upd.Description)
	}
	if upd.Price != nil {
		ub = ub.Set("price", *upd.Price)
	}
	if upd.Discount != nil {
		ub = ub.Set("discount", *upd.Discount)
	}

	return toSQL(ub.
		Where(sq.Eq{"id": productID, "seller_id": sellerID}).
		Suffix(returning(productColumns)))
}

func buildDeleteProductQuery(b sq.StatementBuilderType, productID, sellerID int64) (string, []any, error) {
	return toSQL(b.Delete(productsTable).
		Where(sq.Eq{"id": productID, "seller_id": sellerID}))
}

// buildSelectProductsQuery lists products, optionally filtered by a
// case-insensitive substring match on name OR category. contains is the
// dialect's substring predicate.
func buildSelectProductsQuery(b sq.StatementBuilderType, search models.ProductSearch, contains func(column, value string) sq.Sqlizer) (string, []any, error) {
	sb := b.Select(productColumns...).From(productsTable).OrderBy("id")

	var filters sq.Or
	if search.Name != "" {
		filters = append(filters, contains("name", search.Name))
	}
	if search.Category != "" {
		filters = append(filters, contains("category", search.Category))
	}
	if len(filters) > 0 {
		sb = sb.Where(filters)
	}

	return toSQL(sb)
}

// ── carts ────────────────────────────────────────────────────────────────────

func buildInsertCartItemQuery(b sq.StatementBuilderType, buyerID, productID int64) (string, []any, error) {
	return toSQL(b.Insert(cartsTable).
		Columns("buyer_id", "product_id").
		Values(buyerID, productID).
		Suffix(returning(cartItemColumns)))
}

func buildDeleteCartItemQuery(b sq.StatementBuilderType, cartItemID, buyerID int64) (string, []any, error) {
	return toSQL(b.Delete(cartsTable).
		Where(sq.Eq{"id": cartItemID, "buyer_id": buyerID}))
}
