package caja_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-comercios/internal/application/caja"
	"github.com/tu-usuario/pos-comercios/internal/application/dto"
	"github.com/tu-usuario/pos-comercios/internal/domain"
	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
)

const testComercioID = "00000000-0000-0000-0000-0000000000aa"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCierreRepo struct {
	cierres []*entity.CierreCaja
}

func (f *fakeCierreRepo) Create(c *entity.CierreCaja) error {
	f.cierres = append(f.cierres, c)
	return nil
}

func (f *fakeCierreRepo) GetLatest(comercioID string) (*entity.CierreCaja, error) {
	var latest *entity.CierreCaja
	for _, c := range f.cierres {
		if c.ComercioID != comercioID {
			continue
		}
		if latest == nil || c.Fecha.After(latest.Fecha) {
			latest = c
		}
	}
	return latest, nil
}

func (f *fakeCierreRepo) GetByID(comercioID, id string) (*entity.CierreCaja, error) {
	for _, c := range f.cierres {
		if c.ComercioID == comercioID && c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCierreRepo) ListByComercio(comercioID string, limit, offset int) ([]*entity.CierreCaja, error) {
	// más recientes primero (los fakes se crean en orden cronológico)
	var all []*entity.CierreCaja
	for i := len(f.cierres) - 1; i >= 0; i-- {
		if f.cierres[i].ComercioID == comercioID {
			all = append(all, f.cierres[i])
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeCierreRepo) CountByComercio(comercioID string) (int, error) {
	n := 0
	for _, c := range f.cierres {
		if c.ComercioID == comercioID {
			n++
		}
	}
	return n, nil
}

// fakeCajaRepo devuelve agregados fijos y registra el "desde" recibido para
// verificar la frontera del período.
type fakeCajaRepo struct {
	ventas    decimal.Decimal
	gastos    decimal.Decimal
	porMetodo []entity.MetodoTotal
	lastDesde time.Time
}

func (f *fakeCajaRepo) TotalVentasDesde(_ context.Context, _ string, desde time.Time) (decimal.Decimal, error) {
	f.lastDesde = desde
	return f.ventas, nil
}

func (f *fakeCajaRepo) TotalGastosDesde(_ context.Context, _ string, _ time.Time) (decimal.Decimal, error) {
	return f.gastos, nil
}

func (f *fakeCajaRepo) VentasPorMetodoDesde(_ context.Context, _ string, _ time.Time) ([]entity.MetodoTotal, error) {
	return f.porMetodo, nil
}

type fakeGastoRepo struct {
	gastos []*entity.Gasto
}

func (f *fakeGastoRepo) Create(g *entity.Gasto) error {
	f.gastos = append(f.gastos, g)
	return nil
}

func (f *fakeGastoRepo) ListDesde(comercioID string, desde time.Time) ([]*entity.Gasto, error) {
	var out []*entity.Gasto
	for _, g := range f.gastos {
		if g.ComercioID == comercioID && g.Fecha.After(desde) {
			out = append(out, g)
		}
	}
	return out, nil
}

type fakeComercioRepo struct {
	comercios map[string]*entity.Comercio
}

func (f *fakeComercioRepo) GetByID(id string) (*entity.Comercio, error) {
	return f.comercios[id], nil
}

func (f *fakeComercioRepo) UpdateExpiry(id string, expiresAt *time.Time) error {
	if c, ok := f.comercios[id]; ok {
		c.ExpiresAt = expiresAt
	}
	return nil
}

type stubPDFGen struct{ called bool }

func (s *stubPDFGen) GenerateCierrePDF(_ context.Context, _ *entity.CierreCaja, _ *entity.Comercio) ([]byte, error) {
	s.called = true
	return []byte("%PDF-fake"), nil
}

func newUseCase(cierres *fakeCierreRepo, cajaRepo *fakeCajaRepo, gastos *fakeGastoRepo) *caja.CajaUseCase {
	comercios := &fakeComercioRepo{comercios: map[string]*entity.Comercio{
		testComercioID: {ID: testComercioID, Name: "Bodega La Esquina", Slug: "la-esquina", Active: true},
	}}
	return caja.NewCajaUseCase(cierres, cajaRepo, gastos, comercios, &stubPDFGen{}, nil)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Resumen
// ──────────────────────────────────────────────────────────────────────────────

// Comercio que nunca cerró caja: el período abarca toda la historia
// (desde = tiempo cero) y TotalEnCaja = ventas - gastos.
func TestResumen_SinCierrePrevio(t *testing.T) {
	cajaRepo := &fakeCajaRepo{ventas: dec("10.00"), gastos: dec("2.00")}
	uc := newUseCase(&fakeCierreRepo{}, cajaRepo, &fakeGastoRepo{})

	out, err := uc.Resumen(context.Background(), testComercioID)
	require.NoError(t, err)

	assert.Nil(t, out.Desde, "sin cierre previo, desde debe ser nil")
	assert.True(t, cajaRepo.lastDesde.IsZero(),
		"sin cierre previo se consulta desde el tiempo cero")
	assert.True(t, out.TotalVentas.Equal(dec("10.00")))
	assert.True(t, out.TotalGastos.Equal(dec("2.00")))
	assert.True(t, out.TotalEnCaja.Equal(dec("8.00")),
		"total en caja = ventas - gastos")
}

// Después de cerrar, el siguiente resumen arranca en la fecha del cierre:
// los movimientos previos no se vuelven a contar.
func TestResumen_DespuesDeCerrar_NuevaVentana(t *testing.T) {
	cierres := &fakeCierreRepo{}
	cajaRepo := &fakeCajaRepo{ventas: dec("10.00"), gastos: dec("2.00")}
	uc := newUseCase(cierres, cajaRepo, &fakeGastoRepo{})

	totalReal := dec("7.50")
	cierre, err := uc.Cerrar(testComercioID, dto.CerrarCajaRequest{
		TotalVentas:  dec("10.00"),
		TotalGastos:  dec("2.00"),
		TotalSistema: dec("8.00"),
		TotalReal:    &totalReal,
	})
	require.NoError(t, err)

	out, err := uc.Resumen(context.Background(), testComercioID)
	require.NoError(t, err)

	require.NotNil(t, out.Desde)
	assert.Equal(t, cierre.Fecha, *out.Desde,
		"el nuevo período arranca en la fecha del cierre")
	assert.Equal(t, cierre.Fecha, cajaRepo.lastDesde,
		"las agregaciones deben consultarse desde la fecha del último cierre")
}

// El resumen incluye el desglose por método y los gastos del período.
func TestResumen_IncluyeDesgloseYGastos(t *testing.T) {
	cajaRepo := &fakeCajaRepo{
		ventas: dec("15.00"),
		gastos: dec("3.00"),
		porMetodo: []entity.MetodoTotal{
			{MetodoPagoID: "m1", Nombre: "Efectivo", Total: dec("9.00")},
			{MetodoPagoID: "m2", Nombre: "Pago Móvil", Total: dec("6.00")},
		},
	}
	gastos := &fakeGastoRepo{}
	uc := newUseCase(&fakeCierreRepo{}, cajaRepo, gastos)

	monto := dec("3.00")
	_, err := uc.RegistrarGasto(testComercioID, dto.GastoRequest{Descripcion: "hielo", Monto: &monto})
	require.NoError(t, err)

	out, err := uc.Resumen(context.Background(), testComercioID)
	require.NoError(t, err)

	require.Len(t, out.PorMetodo, 2)
	assert.Equal(t, "Efectivo", out.PorMetodo[0].Nombre)
	require.Len(t, out.Gastos, 1)
	assert.Equal(t, "hielo", out.Gastos[0].Descripcion)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cerrar
// ──────────────────────────────────────────────────────────────────────────────

// El servidor confía en los totales reportados y solo calcula la diferencia.
func TestCerrar_CalculaDiferencia(t *testing.T) {
	cierres := &fakeCierreRepo{}
	uc := newUseCase(cierres, &fakeCajaRepo{}, &fakeGastoRepo{})

	totalReal := dec("7.50")
	out, err := uc.Cerrar(testComercioID, dto.CerrarCajaRequest{
		TotalVentas:  dec("10.00"),
		TotalGastos:  dec("2.00"),
		TotalSistema: dec("8.00"),
		TotalReal:    &totalReal,
		Detalle: []dto.MetodoTotalDTO{
			{MetodoPagoID: "m1", Nombre: "Efectivo", Total: dec("10.00")},
		},
		Observaciones: "faltó medio dólar",
	})
	require.NoError(t, err)

	assert.True(t, out.Diferencia.Equal(dec("-0.50")),
		"diferencia = total real - total sistema")
	require.Len(t, cierres.cierres, 1)
	persisted := cierres.cierres[0]
	assert.True(t, persisted.TotalSistema.Equal(dec("8.00")),
		"los totales reportados se persisten tal cual")
	require.Len(t, persisted.Detalle, 1)
	assert.Equal(t, "Efectivo", persisted.Detalle[0].Nombre)
	assert.False(t, persisted.Fecha.IsZero(), "el servidor estampa la fecha del cierre")
}

func TestCerrar_SinTotalReal_EsInvalido(t *testing.T) {
	uc := newUseCase(&fakeCierreRepo{}, &fakeCajaRepo{}, &fakeGastoRepo{})

	_, err := uc.Cerrar(testComercioID, dto.CerrarCajaRequest{
		TotalSistema: dec("8.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"cerrar sin total real debe ser entrada inválida")
}

// ──────────────────────────────────────────────────────────────────────────────
// Gastos
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarGasto_Validaciones(t *testing.T) {
	uc := newUseCase(&fakeCierreRepo{}, &fakeCajaRepo{}, &fakeGastoRepo{})

	monto := dec("5.00")
	negativo := dec("-1.00")

	cases := []struct {
		name string
		in   dto.GastoRequest
	}{
		{"sin descripción", dto.GastoRequest{Descripcion: "   ", Monto: &monto}},
		{"sin monto", dto.GastoRequest{Descripcion: "bolsas"}},
		{"monto negativo", dto.GastoRequest{Descripcion: "bolsas", Monto: &negativo}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RegistrarGasto(testComercioID, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRegistrarGasto_RecortaDescripcion(t *testing.T) {
	gastos := &fakeGastoRepo{}
	uc := newUseCase(&fakeCierreRepo{}, &fakeCajaRepo{}, gastos)

	monto := dec("5.00")
	out, err := uc.RegistrarGasto(testComercioID, dto.GastoRequest{
		Descripcion: "  bolsas  ",
		Monto:       &monto,
	})
	require.NoError(t, err)
	assert.Equal(t, "bolsas", out.Descripcion)
	require.Len(t, gastos.gastos, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Historial
// ──────────────────────────────────────────────────────────────────────────────

// Página fija de 30: con 35 cierres la página 1 trae 30 y la 2 los 5 restantes.
func TestHistorial_PaginaFijaDe30(t *testing.T) {
	cierres := &fakeCierreRepo{}
	uc := newUseCase(cierres, &fakeCajaRepo{}, &fakeGastoRepo{})

	base := time.Now().Add(-40 * time.Hour)
	for i := 0; i < 35; i++ {
		cierres.cierres = append(cierres.cierres, &entity.CierreCaja{
			ID:         strconv.Itoa(i),
			ComercioID: testComercioID,
			Fecha:      base.Add(time.Duration(i) * time.Hour),
		})
	}

	page1, err := uc.Historial(testComercioID, 1)
	require.NoError(t, err)
	assert.Len(t, page1.Items, 30)
	assert.Equal(t, 2, page1.Page.TotalPages)
	assert.True(t, page1.Page.HasNext)
	assert.False(t, page1.Page.HasPrev)

	page2, err := uc.Historial(testComercioID, 2)
	require.NoError(t, err)
	assert.Len(t, page2.Items, 5)
	assert.False(t, page2.Page.HasNext)
	assert.True(t, page2.Page.HasPrev)

	// más recientes primero
	assert.True(t, page1.Items[0].Fecha.After(page1.Items[1].Fecha))
}

// ──────────────────────────────────────────────────────────────────────────────
// PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestCierrePDF_CierreInexistente_Retorna404(t *testing.T) {
	uc := newUseCase(&fakeCierreRepo{}, &fakeCajaRepo{}, &fakeGastoRepo{})

	_, err := uc.CierrePDF(context.Background(), testComercioID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCierrePDF_GeneraBytes(t *testing.T) {
	cierres := &fakeCierreRepo{cierres: []*entity.CierreCaja{
		{ID: "c1", ComercioID: testComercioID, Fecha: time.Now()},
	}}
	uc := newUseCase(cierres, &fakeCajaRepo{}, &fakeGastoRepo{})

	out, err := uc.CierrePDF(context.Background(), testComercioID, "c1")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

// Un cierre de otro comercio no es visible: el lookup va acotado al tenant.
func TestCierrePDF_CierreDeOtroComercio_Retorna404(t *testing.T) {
	cierres := &fakeCierreRepo{cierres: []*entity.CierreCaja{
		{ID: "c1", ComercioID: "otro-comercio", Fecha: time.Now()},
	}}
	uc := newUseCase(cierres, &fakeCajaRepo{}, &fakeGastoRepo{})

	_, err := uc.CierrePDF(context.Background(), testComercioID, "c1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
