package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventory-health/internal/application/auth"
	"github.com/tu-usuario/inventory-health/internal/application/dto"
	"github.com/tu-usuario/inventory-health/internal/domain"
	"github.com/tu-usuario/inventory-health/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/inventory-health/pkg/jwt"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testPassword = "correcthorse"
)

type fakeUserRepo struct {
	users map[string]*entity.User
	err   error
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.users[username], nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.err != nil {
		return r.err
	}
	if _, exists := r.users[user.Username]; exists {
		return domain.ErrUsernameTaken
	}
	if user.ID == "" {
		user.ID = "generated-id"
	}
	r.users[user.Username] = user
	return nil
}

func newTestUseCase(t *testing.T, status string) (*auth.UseCase, *entity.User) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		ID:           "00000000-0000-0000-0000-000000000001",
		Username:     "cfo",
		PasswordHash: string(hash),
		FullName:     "Carla Fuentes",
		Role:         entity.RoleExecutive,
		Status:       status,
	}
	repo := &fakeUserRepo{users: map[string]*entity.User{user.Username: user}}
	uc := auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 30,
		Issuer:     "inventory-health-test",
	})
	return uc, user
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, user := newTestUseCase(t, "active")

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "cfo", Password: testPassword})
	require.NoError(t, err)

	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, user.Username, out.User.Username)
	assert.Equal(t, entity.RoleExecutive, out.User.Role)
	assert.Equal(t, "Carla Fuentes", out.User.FullName)

	// El token debe traer los claims del usuario autenticado.
	userID, username, role, err := pkgjwt.Parse(testSecret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "cfo", username)
	assert.Equal(t, entity.RoleExecutive, role)
}

func TestLogin_CamposVacios_EsInvalido(t *testing.T) {
	uc, _ := newTestUseCase(t, "active")

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Usuario inexistente y password incorrecta deben ser indistinguibles.
func TestLogin_UsuarioInexistente_Retorna401(t *testing.T) {
	uc, _ := newTestUseCase(t, "active")

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_PasswordIncorrecta_Retorna401(t *testing.T) {
	uc, _ := newTestUseCase(t, "active")

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "cfo", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaInactiva_Retorna403(t *testing.T) {
	uc, _ := newTestUseCase(t, "disabled")

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "cfo", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegister_CreaUsuarioConPasswordHasheada(t *testing.T) {
	uc, _ := newTestUseCase(t, "active")

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "analista",
		Password: "clave-segura-123",
		FullName: "Ana Lista",
		Role:     entity.RoleAnalyst,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "analista", out.Username)
	assert.Equal(t, entity.RoleAnalyst, out.Role)
	assert.Equal(t, "active", out.Status)

	// El usuario creado debe poder iniciar sesión con la password en claro.
	login, err := uc.Login(context.Background(), dto.LoginRequest{Username: "analista", Password: "clave-segura-123"})
	require.NoError(t, err)
	assert.Equal(t, "analista", login.User.Username)
}

func TestRegister_RolVacioDegradaAViewer(t *testing.T) {
	uc, _ := newTestUseCase(t, "active")

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "invitado",
		Password: "clave-segura-123",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleViewer, out.Role)
}

func TestRegister_RolDesconocido_EsInvalido(t *testing.T) {
	uc, _ := newTestUseCase(t, "active")

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "atacante",
		Password: "clave-segura-123",
		Role:     "superadmin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_PasswordCorta_EsInvalida(t *testing.T) {
	uc, _ := newTestUseCase(t, "active")

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "u", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_UsernameDuplicado_Retorna409(t *testing.T) {
	uc, _ := newTestUseCase(t, "active")

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "cfo",
		Password: "clave-segura-123",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestMe_UsuarioExistente(t *testing.T) {
	uc, user := newTestUseCase(t, "active")

	out, err := uc.Me(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.ID, out.UserID)
	assert.Equal(t, "cfo", out.Username)
	assert.Equal(t, entity.RoleExecutive, out.Role)
}

func TestMe_UsuarioEliminado_RetornaNoEncontrado(t *testing.T) {
	uc, _ := newTestUseCase(t, "active")

	_, err := uc.Me(context.Background(), "id-que-no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_ErrorDeRepoSePropaga(t *testing.T) {
	repo := &fakeUserRepo{err: errors.New("conexión perdida")}
	uc := auth.NewUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 30})

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "cfo", Password: testPassword})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}
