// Package usecase agrupa los casos de uso CRUD de soporte: productos,
// usuarios, gastos y asistencia. La lógica de stock vive en inventory y
// sales; aquí los contadores solo se leen.
package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// ProductUseCase maneja el catálogo de productos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create registra un producto nuevo con ambos contadores en cero.
// El stock inicial entra después mediante movimientos "in".
func (uc *ProductUseCase) Create(req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sku := strings.TrimSpace(req.SKU)
	name := strings.TrimSpace(req.Name)
	if sku == "" || name == "" {
		return nil, fmt.Errorf("%w: sku y name son requeridos", domain.ErrInvalidInput)
	}
	if req.PurchasePrice.IsNegative() || req.SellingPrice.IsNegative() {
		return nil, fmt.Errorf("%w: los precios no pueden ser negativos", domain.ErrInvalidInput)
	}
	if req.MinStockAlert < 0 {
		return nil, fmt.Errorf("%w: min_stock_alert no puede ser negativo", domain.ErrInvalidInput)
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		SKU:           sku,
		Name:          name,
		Description:   strings.TrimSpace(req.Description),
		Category:      strings.TrimSpace(req.Category),
		Unit:          strings.TrimSpace(req.Unit),
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		MinStockAlert: req.MinStockAlert,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if product.Unit == "" {
		product.Unit = "unidad"
	}

	if err := uc.productRepo.Create(product); err != nil {
		return nil, err // SKU duplicado llega como domain.ErrDuplicate
	}
	return dto.ToProductResponse(product), nil
}

// GetByID devuelve un producto por su ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// List devuelve una página del catálogo.
func (uc *ProductUseCase) List(page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ToProductResponse(p))
	}
	return out, nil
}

// ListLowStock devuelve los productos cuyo stock total está en o bajo el
// umbral de alerta.
func (uc *ProductUseCase) ListLowStock() ([]*dto.ProductResponse, error) {
	products, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ToProductResponse(p))
	}
	return out, nil
}

// Update modifica los datos del producto. El SKU y los contadores de stock
// no se tocan: los contadores solo cambian por movimientos.
func (uc *ProductUseCase) Update(id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if req.PurchasePrice.IsNegative() || req.SellingPrice.IsNegative() {
		return nil, fmt.Errorf("%w: los precios no pueden ser negativos", domain.ErrInvalidInput)
	}
	if req.MinStockAlert < 0 {
		return nil, fmt.Errorf("%w: min_stock_alert no puede ser negativo", domain.ErrInvalidInput)
	}

	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	product.Name = name
	product.Description = strings.TrimSpace(req.Description)
	product.Category = strings.TrimSpace(req.Category)
	product.Unit = strings.TrimSpace(req.Unit)
	product.PurchasePrice = req.PurchasePrice
	product.SellingPrice = req.SellingPrice
	product.MinStockAlert = req.MinStockAlert
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// Delete elimina un producto sin historia. Si el producto está referenciado
// por movimientos o ventas, la capa de persistencia responde ErrConflict y
// el registro se preserva.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.productRepo.Delete(id)
}
