package caja

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pos-comercios/internal/application/dto"
	"github.com/tu-usuario/pos-comercios/internal/domain"
	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
	"github.com/tu-usuario/pos-comercios/internal/domain/repository"
)

// Página fija del historial de cierres.
const historialPageSize = 30

// CierrePDFGenerator genera el comprobante PDF de un cierre de caja.
// Lo implementa pdf.MarotoCierreGenerator.
type CierrePDFGenerator interface {
	GenerateCierrePDF(ctx context.Context, cierre *entity.CierreCaja, comercio *entity.Comercio) ([]byte, error)
}

// CierreXMLExporter serializa el historial de cierres a XML para sistemas contables.
// Lo implementa xmlreport.CierreExporter.
type CierreXMLExporter interface {
	Export(comercio *entity.Comercio, cierres []*entity.CierreCaja) ([]byte, error)
}

// CajaUseCase casos de uso de caja: resumen del período abierto, registro de
// gastos, cierre y consulta del historial.
type CajaUseCase struct {
	cierreRepo   repository.CierreCajaRepository
	cajaRepo     repository.CajaRepository
	gastoRepo    repository.GastoRepository
	comercioRepo repository.ComercioRepository
	pdfGen       CierrePDFGenerator
	xmlExporter  CierreXMLExporter
}

// NewCajaUseCase construye el caso de uso.
func NewCajaUseCase(
	cierreRepo repository.CierreCajaRepository,
	cajaRepo repository.CajaRepository,
	gastoRepo repository.GastoRepository,
	comercioRepo repository.ComercioRepository,
	pdfGen CierrePDFGenerator,
	xmlExporter CierreXMLExporter,
) *CajaUseCase {
	return &CajaUseCase{
		cierreRepo:   cierreRepo,
		cajaRepo:     cajaRepo,
		gastoRepo:    gastoRepo,
		comercioRepo: comercioRepo,
		pdfGen:       pdfGen,
		xmlExporter:  xmlExporter,
	}
}

// Resumen calcula los acumulados del período abierto: todo lo vendido y gastado
// con fecha estrictamente mayor al último cierre (o desde siempre si nunca cerró).
// TotalEnCaja = TotalVentas - TotalGastos. Cada venta/gasto cuenta exactamente
// una vez: los cierres parten el tiempo en ventanas disjuntas.
func (uc *CajaUseCase) Resumen(ctx context.Context, comercioID string) (*dto.ResumenResponse, error) {
	ultimo, err := uc.cierreRepo.GetLatest(comercioID)
	if err != nil {
		return nil, err
	}
	var desde time.Time
	var desdePtr *time.Time
	if ultimo != nil {
		desde = ultimo.Fecha
		desdePtr = &ultimo.Fecha
	}

	totalVentas, err := uc.cajaRepo.TotalVentasDesde(ctx, comercioID, desde)
	if err != nil {
		return nil, err
	}
	totalGastos, err := uc.cajaRepo.TotalGastosDesde(ctx, comercioID, desde)
	if err != nil {
		return nil, err
	}
	porMetodo, err := uc.cajaRepo.VentasPorMetodoDesde(ctx, comercioID, desde)
	if err != nil {
		return nil, err
	}
	gastos, err := uc.gastoRepo.ListDesde(comercioID, desde)
	if err != nil {
		return nil, err
	}

	resp := &dto.ResumenResponse{
		Desde:       desdePtr,
		TotalVentas: totalVentas,
		TotalGastos: totalGastos,
		TotalEnCaja: totalVentas.Sub(totalGastos),
		PorMetodo:   make([]dto.MetodoTotalDTO, 0, len(porMetodo)),
		Gastos:      make([]dto.GastoResponse, 0, len(gastos)),
	}
	for _, m := range porMetodo {
		resp.PorMetodo = append(resp.PorMetodo, dto.MetodoTotalDTO{
			MetodoPagoID: m.MetodoPagoID,
			Nombre:       m.Nombre,
			Total:        m.Total,
		})
	}
	for _, g := range gastos {
		resp.Gastos = append(resp.Gastos, toGastoResponse(g))
	}
	return resp, nil
}

// Cerrar persiste el cierre del período con los totales reportados por el
// cliente. El servidor solo calcula Diferencia = TotalReal - TotalSistema y
// estampa la fecha actual, que pasa a ser la frontera del siguiente período.
func (uc *CajaUseCase) Cerrar(comercioID string, in dto.CerrarCajaRequest) (*dto.CierreResponse, error) {
	if in.TotalReal == nil {
		return nil, domain.ErrInvalidInput
	}
	detalle := make([]entity.MetodoTotal, 0, len(in.Detalle))
	for _, d := range in.Detalle {
		detalle = append(detalle, entity.MetodoTotal{
			MetodoPagoID: d.MetodoPagoID,
			Nombre:       d.Nombre,
			Total:        d.Total,
		})
	}
	cierre := &entity.CierreCaja{
		ID:            uuid.New().String(),
		ComercioID:    comercioID,
		TotalVentas:   in.TotalVentas,
		TotalGastos:   in.TotalGastos,
		TotalSistema:  in.TotalSistema,
		TotalReal:     *in.TotalReal,
		Diferencia:    in.TotalReal.Sub(in.TotalSistema),
		Detalle:       detalle,
		Observaciones: in.Observaciones,
		Fecha:         time.Now(),
	}
	if err := uc.cierreRepo.Create(cierre); err != nil {
		return nil, err
	}
	return toCierreResponse(cierre), nil
}

// RegistrarGasto registra un gasto de caja con la fecha actual.
// Descripción y monto (numérico positivo) son obligatorios.
func (uc *CajaUseCase) RegistrarGasto(comercioID string, in dto.GastoRequest) (*dto.GastoResponse, error) {
	descripcion := strings.TrimSpace(in.Descripcion)
	if descripcion == "" || in.Monto == nil || !in.Monto.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	gasto := &entity.Gasto{
		ID:          uuid.New().String(),
		ComercioID:  comercioID,
		Descripcion: descripcion,
		Monto:       *in.Monto,
		Fecha:       time.Now(),
	}
	if err := uc.gastoRepo.Create(gasto); err != nil {
		return nil, err
	}
	resp := toGastoResponse(gasto)
	return &resp, nil
}

// Historial lista los cierres del comercio por fecha descendente, en páginas fijas de 30.
func (uc *CajaUseCase) Historial(comercioID string, page int) (*dto.HistorialResponse, error) {
	if page <= 0 {
		page = 1
	}
	total, err := uc.cierreRepo.CountByComercio(comercioID)
	if err != nil {
		return nil, err
	}
	list, err := uc.cierreRepo.ListByComercio(comercioID, historialPageSize, (page-1)*historialPageSize)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CierreResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCierreResponse(c))
	}
	return &dto.HistorialResponse{
		Items: items,
		Page:  dto.NewPageResponse(page, historialPageSize, total),
	}, nil
}

// CierrePDF genera el comprobante PDF de un cierre del comercio.
func (uc *CajaUseCase) CierrePDF(ctx context.Context, comercioID, cierreID string) ([]byte, error) {
	cierre, err := uc.cierreRepo.GetByID(comercioID, cierreID)
	if err != nil {
		return nil, err
	}
	if cierre == nil {
		return nil, domain.ErrNotFound
	}
	comercio, err := uc.comercioRepo.GetByID(comercioID)
	if err != nil {
		return nil, err
	}
	if comercio == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdfGen.GenerateCierrePDF(ctx, cierre, comercio)
}

// ExportarXML serializa todo el historial de cierres del comercio a XML.
func (uc *CajaUseCase) ExportarXML(comercioID string) ([]byte, error) {
	comercio, err := uc.comercioRepo.GetByID(comercioID)
	if err != nil {
		return nil, err
	}
	if comercio == nil {
		return nil, domain.ErrNotFound
	}
	total, err := uc.cierreRepo.CountByComercio(comercioID)
	if err != nil {
		return nil, err
	}
	cierres, err := uc.cierreRepo.ListByComercio(comercioID, total, 0)
	if err != nil {
		return nil, err
	}
	return uc.xmlExporter.Export(comercio, cierres)
}

func toGastoResponse(g *entity.Gasto) dto.GastoResponse {
	return dto.GastoResponse{
		ID:          g.ID,
		Descripcion: g.Descripcion,
		Monto:       g.Monto,
		Fecha:       g.Fecha,
	}
}

func toCierreResponse(c *entity.CierreCaja) *dto.CierreResponse {
	detalle := make([]dto.MetodoTotalDTO, 0, len(c.Detalle))
	for _, d := range c.Detalle {
		detalle = append(detalle, dto.MetodoTotalDTO{
			MetodoPagoID: d.MetodoPagoID,
			Nombre:       d.Nombre,
			Total:        d.Total,
		})
	}
	return &dto.CierreResponse{
		ID:            c.ID,
		TotalVentas:   c.TotalVentas,
		TotalGastos:   c.TotalGastos,
		TotalSistema:  c.TotalSistema,
		TotalReal:     c.TotalReal,
		Diferencia:    c.Diferencia,
		Detalle:       detalle,
		Observaciones: c.Observaciones,
		Fecha:         c.Fecha,
	}
}
