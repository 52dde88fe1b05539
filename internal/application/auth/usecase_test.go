package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passoapasso/cantina-api/internal/application/auth"
	"github.com/passoapasso/cantina-api/internal/application/dto"
	"github.com/passoapasso/cantina-api/internal/domain"
	"github.com/passoapasso/cantina-api/internal/domain/entity"
	pkgjwt "github.com/passoapasso/cantina-api/pkg/jwt"
)

// fakeUserRepo implementación en memoria de repository.UserRepository.
type fakeUserRepo struct {
	users []entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for i := range r.users {
		if r.users[i].Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users = append(r.users, *u)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func newAuthUC() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "cantina-api-test",
	})
	return uc, repo
}

func TestAuth_RegisterHasheaElPassword(t *testing.T) {
	uc, repo := newAuthUC()

	out, err := uc.RegisterUser(dto.RegisterRequest{Email: "op@cantina.br", Password: "segredo-forte"})
	require.NoError(t, err)
	assert.Equal(t, "op@cantina.br", out.Email)
	assert.Equal(t, "op@cantina.br", out.Name, "sin nombre usa el email")
	assert.Equal(t, "active", out.Status)

	stored, err := repo.FindByEmail("op@cantina.br")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "segredo-forte", stored.PasswordHash, "el password nunca se guarda plano")
}

func TestAuth_RegisterEmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "op@cantina.br", Password: "segredo-forte"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "op@cantina.br", Password: "outro-segredo"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestAuth_LoginDevuelveTokenValido(t *testing.T) {
	uc, _ := newAuthUC()

	reg, err := uc.RegisterUser(dto.RegisterRequest{Email: "op@cantina.br", Password: "segredo-forte", Name: "Operadora"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "op@cantina.br", Password: "segredo-forte"})
	require.NoError(t, err)
	assert.Equal(t, "Operadora", out.User.Name)

	userID, err := pkgjwt.Parse("test-secret-key-for-unit-tests", out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID, "el token lleva el id del usuario")
}

func TestAuth_LoginPasswordIncorrecto(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "op@cantina.br", Password: "segredo-forte"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "op@cantina.br", Password: "errado"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuth_LoginUsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@cantina.br", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAuth_CurrentUser(t *testing.T) {
	uc, _ := newAuthUC()

	reg, err := uc.RegisterUser(dto.RegisterRequest{Email: "op@cantina.br", Password: "segredo-forte"})
	require.NoError(t, err)

	out, err := uc.CurrentUser(reg.ID)
	require.NoError(t, err)
	assert.Equal(t, reg.Email, out.Email)

	_, err = uc.CurrentUser("no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
