package admin_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-comercios/internal/application/admin"
	"github.com/tu-usuario/pos-comercios/internal/domain"
	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
	"github.com/tu-usuario/pos-comercios/internal/domain/repository"
)

const testComercioID = "00000000-0000-0000-0000-0000000000aa"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakePagoRepo struct {
	pagos map[string]*entity.PagoSuscripcion
}

func (f *fakePagoRepo) GetByID(id string) (*entity.PagoSuscripcion, error) {
	return f.pagos[id], nil
}

func (f *fakePagoRepo) Delete(id string) error {
	if _, ok := f.pagos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.pagos, id)
	return nil
}

func (f *fakePagoRepo) ListAll() ([]repository.PagoAdminRow, error) {
	var out []repository.PagoAdminRow
	for _, p := range f.pagos {
		out = append(out, repository.PagoAdminRow{
			ID:         p.ID,
			ComercioID: p.ComercioID,
			Meses:      p.Meses,
			Fecha:      p.Fecha,
		})
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

// fakeTxRunner ejecuta fn contra los repos compartidos y, si fn falla,
// restaura los vencimientos — igual que el rollback de una tx real. El hook
// antes permite simular escrituras concurrentes previas a la transacción.
type fakeTxRunner struct {
	pagos     *fakePagoRepo
	comercios *fakeComercioRepo
	antes     func()
}

func (f *fakeTxRunner) RunPago(_ context.Context, fn func(
	pagoRepo repository.PagoSuscripcionRepository,
	comercioRepo repository.ComercioRepository,
) error) error {
	previos := map[string]*time.Time{}
	for id, c := range f.comercios.comercios {
		previos[id] = c.ExpiresAt
	}
	if f.antes != nil {
		f.antes()
	}
	if err := fn(f.pagos, f.comercios); err != nil {
		for id, exp := range previos {
			f.comercios.comercios[id].ExpiresAt = exp
		}
		return err
	}
	return nil
}

func setup(meses int, expiresAt *time.Time) (*admin.PagosUseCase, *fakePagoRepo, *fakeComercioRepo) {
	pagos := &fakePagoRepo{pagos: map[string]*entity.PagoSuscripcion{
		"pago-1": {ID: "pago-1", ComercioID: testComercioID, Meses: meses, Fecha: time.Now()},
	}}
	comercios := &fakeComercioRepo{comercios: map[string]*entity.Comercio{
		testComercioID: {ID: testComercioID, Name: "Bodega La Esquina", Active: true, ExpiresAt: expiresAt},
	}}
	runner := &fakeTxRunner{pagos: pagos, comercios: comercios}
	return admin.NewPagosUseCase(runner, pagos), pagos, comercios
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminar
// ──────────────────────────────────────────────────────────────────────────────

// Eliminar un pago de N meses retrocede el vencimiento exactamente N meses.
func TestEliminar_RetrocedeVencimiento(t *testing.T) {
	vence := time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC)
	uc, pagos, comercios := setup(2, &vence)

	err := uc.Eliminar(context.Background(), "pago-1")
	require.NoError(t, err)

	assert.Nil(t, pagos.pagos["pago-1"], "el pago debe quedar eliminado")
	esperado := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	require.NotNil(t, comercios.comercios[testComercioID].ExpiresAt)
	assert.Equal(t, esperado, *comercios.comercios[testComercioID].ExpiresAt,
		"el vencimiento retrocede los meses del pago eliminado")
}

// Pago con meses 0: se elimina pero el vencimiento no se toca.
func TestEliminar_MesesCero_NoTocaVencimiento(t *testing.T) {
	vence := time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC)
	uc, pagos, comercios := setup(0, &vence)

	err := uc.Eliminar(context.Background(), "pago-1")
	require.NoError(t, err)

	assert.Nil(t, pagos.pagos["pago-1"])
	assert.Equal(t, vence, *comercios.comercios[testComercioID].ExpiresAt,
		"meses 0 no debe modificar el vencimiento")
}

// Comercio sin vencimiento registrado: el pago se elimina sin ajustar nada.
func TestEliminar_ComercioSinVencimiento(t *testing.T) {
	uc, pagos, comercios := setup(3, nil)

	err := uc.Eliminar(context.Background(), "pago-1")
	require.NoError(t, err)

	assert.Nil(t, pagos.pagos["pago-1"])
	assert.Nil(t, comercios.comercios[testComercioID].ExpiresAt)
}

func TestEliminar_PagoInexistente_Retorna404(t *testing.T) {
	uc, _, _ := setup(1, nil)

	err := uc.Eliminar(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si el pago desaparece entre la lectura y la transacción, el borrado reporta
// 404 y la tx se revierte: el vencimiento no queda retrocedido por un pago
// que otro admin ya eliminó.
func TestEliminar_PagoBorradoConcurrentemente_RevierteAjuste(t *testing.T) {
	vence := time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC)
	pagos := &fakePagoRepo{pagos: map[string]*entity.PagoSuscripcion{
		"pago-1": {ID: "pago-1", ComercioID: testComercioID, Meses: 2, Fecha: time.Now()},
	}}
	comercios := &fakeComercioRepo{comercios: map[string]*entity.Comercio{
		testComercioID: {ID: testComercioID, Name: "Bodega La Esquina", Active: true, ExpiresAt: &vence},
	}}
	runner := &fakeTxRunner{pagos: pagos, comercios: comercios,
		antes: func() { delete(pagos.pagos, "pago-1") },
	}
	uc := admin.NewPagosUseCase(runner, pagos)

	err := uc.Eliminar(context.Background(), "pago-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NotNil(t, comercios.comercios[testComercioID].ExpiresAt)
	assert.Equal(t, vence, *comercios.comercios[testComercioID].ExpiresAt,
		"el vencimiento no debe quedar retrocedido si la transacción falla")
}
