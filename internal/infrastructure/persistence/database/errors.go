package database

import (
	"errors"
	"strings"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	apperrors "github.com/libreria/backoffice/pkg/errors"
)

// 数据库约束错误码
// PostgreSQL: 23503 foreign_key_violation, 23505 unique_violation
// MySQL:      1451/1452 外键约束, 1062 Duplicate entry
// SQLite:     只能通过错误信息判断
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"

	mysqlRowIsReferenced = 1451
	mysqlNoReferencedRow = 1452
	mysqlDuplicateEntry  = 1062
)

// isForeignKeyError 判断是否为外键约束错误
func isForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlRowIsReferenced || myErr.Number == mysqlNoReferencedRow
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// isDuplicateError 判断是否为唯一索引冲突
func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// translate 把驱动错误转换为应用错误
// 约束类错误属于业务规则(400),其余一律作为内部错误包装,message是返回给调用方的通用提示
func translate(err error, message string) error {
	switch {
	case isForeignKeyError(err):
		return &apperrors.AppError{
			Kind:    apperrors.KindBusinessRule,
			Code:    apperrors.ErrCodeForeignKey,
			Message: apperrors.ErrForeignKey.Message,
			Err:     err,
		}
	case isDuplicateError(err):
		return &apperrors.AppError{
			Kind:    apperrors.KindBusinessRule,
			Code:    apperrors.ErrCodeDuplicateEntry,
			Message: apperrors.ErrDuplicateEntry.Message,
			Err:     err,
		}
	default:
		return apperrors.Wrap(err, message)
	}
}

// exists 判断主键记录是否存在
// MySQL默认返回"实际修改的行数",值未变化时RowsAffected为0,需要再查一次区分"不存在"
func exists(db *gorm.DB, model interface{}, id uint) (bool, error) {
	var n int64
	if err := db.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
