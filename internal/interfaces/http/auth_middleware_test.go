package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
	apphttp "github.com/tu-usuario/pos-comercios/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/pos-comercios/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testUserID     = "00000000-0000-0000-0000-000000000001"
	testComercioID = "00000000-0000-0000-0000-000000000002"
	testIssuer     = "pos-comercios-test"
	testExpMin     = 60
)

// buildAdminApp construye una aplicación Fiber mínima con una ruta restringida
// a SUPER_ADMIN (AuthMiddleware + RequireRole).
func buildAdminApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(entity.RoleSuperAdmin),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// buildTenantApp construye una aplicación con una ruta que exige comercio en el token.
func buildTenantApp() *fiber.App {
	app := fiber.New()
	app.Get("/tenant",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireComercio(),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"comercio_id": apphttp.GetComercioID(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT Bearer con el rol y comercio indicados.
func tokenFor(t *testing.T, comercioID, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, comercioID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: SUPER_ADMIN accede a ruta de administración → HTTP 200.
func TestRequireRole_SuperAdminAccedeRutaAdmin(t *testing.T) {
	app := buildAdminApp()
	resp := doRequest(t, app, "/admin", tokenFor(t, "", entity.RoleSuperAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"SUPER_ADMIN debe poder acceder a ruta de administración")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, entity.RoleSuperAdmin, body["role"])
}

// Caso 2: usuario de comercio bloqueado en ruta de administración → HTTP 403.
func TestRequireRole_UsuarioBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildAdminApp()
	resp := doRequest(t, app, "/admin", tokenFor(t, testComercioID, entity.RoleUsuario))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"USUARIO no debe poder acceder a ruta restringida a SUPER_ADMIN")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "acceso denegado",
		"la respuesta de error debe explicar el acceso denegado")
}

// Caso 3: token sin claim de rol → HTTP 401 (sesión incompleta, no 403).
func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	app := buildAdminApp()
	resp := doRequest(t, app, "/admin", tokenFor(t, testComercioID, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token sin rol debe retornar 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "rol requerido")
}

// Caso 4: sin header Authorization → HTTP 401.
func TestRequireRole_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildAdminApp()
	resp := doRequest(t, app, "/admin", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: token inválido / malformado → HTTP 401.
func TestRequireRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildAdminApp()
	resp := doRequest(t, app, "/admin", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireComercio
// ──────────────────────────────────────────────────────────────────────────────

// Un usuario de comercio accede a una ruta de tenant → HTTP 200 con su comercio.
func TestRequireComercio_UsuarioConComercio_Accede(t *testing.T) {
	app := buildTenantApp()
	resp := doRequest(t, app, "/tenant", tokenFor(t, testComercioID, entity.RoleUsuario))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testComercioID, body["comercio_id"])
}

// SUPER_ADMIN (sin comercio en el token) bloqueado en rutas de tenant → HTTP 403.
func TestRequireComercio_SuperAdminSinComercio_Retorna403(t *testing.T) {
	app := buildTenantApp()
	resp := doRequest(t, app, "/tenant", tokenFor(t, "", entity.RoleSuperAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un token sin comercio no debe acceder a rutas de tenant")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":     apphttp.GetUserID(c),
			"comercio_id": apphttp.GetComercioID(c),
			"role":        apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, testComercioID, entity.RoleUsuario))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testComercioID, body["comercio_id"])
	assert.Equal(t, entity.RoleUsuario, body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testComercioID, entity.RoleUsuario, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, comercioID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testComercioID, comercioID)
	assert.Equal(t, entity.RoleUsuario, role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testComercioID, entity.RoleUsuario, testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testComercioID, entity.RoleUsuario, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
