package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/libreria/backoffice/internal/application/book"
	"github.com/libreria/backoffice/internal/domain/book"
	"github.com/libreria/backoffice/internal/interface/http/dto"
	"github.com/libreria/backoffice/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	bookService book.Service
	createBook  *appbook.CreateBookUseCase
	deleteBook  *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	bookService book.Service,
	createBook *appbook.CreateBookUseCase,
	deleteBook *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		bookService: bookService,
		createBook:  createBook,
		deleteBook:  deleteBook,
	}
}

// List 图书列表
// @Summary      图书列表
// @Tags         libros
// @Produce      json
// @Success      200 {array}  dto.BookResponse
// @Failure      500 {object} response.ErrorBody
// @Router       /api/libros [get]
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.bookService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookList(books))
}

// Get 图书详情
// @Summary      图书详情
// @Tags         libros
// @Produce      json
// @Param        id  path     int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody "Libro no encontrado"
// @Router       /api/libros/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	b, err := h.bookService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(b))
}

// Create 创建图书
// @Summary      创建图书
// @Description  同一事务内创建图书和库存行(stock默认0)
// @Tags         libros
// @Accept       json
// @Produce      json
// @Param        request body     dto.BookRequest true "图书信息"
// @Success      200     {object} dto.BookResponse
// @Failure      400     {object} response.ErrorBody
// @Failure      404     {object} response.ErrorBody "Proveedor no encontrado"
// @Router       /api/libros [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.BookRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.createBook.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Book:  *req.ToEntity(),
		Stock: req.InitialStock(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(b))
}

// Update 修改图书
// @Summary      修改图书
// @Tags         libros
// @Accept       json
// @Produce      json
// @Param        id      path     int             true "图书ID"
// @Param        request body     dto.BookRequest true "图书信息"
// @Success      200     {object} dto.BookResponse
// @Failure      400     {object} response.ErrorBody
// @Failure      404     {object} response.ErrorBody
// @Router       /api/libros/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.BookRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.bookService.Update(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(b))
}

// Delete 删除图书
// @Summary      删除图书
// @Description  有销售引用时拒绝删除;库存行与图书在同一事务内删除
// @Tags         libros
// @Produce      json
// @Param        id  path     int true "图书ID"
// @Success      200 {object} response.MessageBody
// @Failure      400 {object} response.ErrorBody "No se puede eliminar el libro porque tiene ventas asociadas"
// @Failure      404 {object} response.ErrorBody
// @Router       /api/libros/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.deleteBook.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Libro eliminado con éxito")
}
