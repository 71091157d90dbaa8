package usecase

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// UserUseCase maneja la gestión de usuarios. El registro (alta) vive en el
// paquete auth; aquí van listado, actualización, cambio de contraseña y baja.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// GetByID devuelve un usuario por su ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// List devuelve una página de usuarios.
func (uc *UserUseCase) List(page dto.PageRequest) ([]dto.UserResponse, error) {
	page.DefaultPage()
	users, err := uc.userRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Update modifica nombre, rol y datos de contacto de un usuario.
func (uc *UserUseCase) Update(id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, fmt.Errorf("%w: full_name es requerido", domain.ErrInvalidInput)
	}
	if !entity.ValidRole(req.Role) {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, req.Role)
	}

	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	user.FullName = fullName
	user.Role = req.Role
	user.Email = strings.TrimSpace(req.Email)
	user.Phone = strings.TrimSpace(req.Phone)
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// ChangePassword cambia la contraseña de targetID.
// El propio usuario debe acreditar su contraseña actual; un owner puede
// cambiar la de cualquier otro sin conocerla. Nadie más puede.
func (uc *UserUseCase) ChangePassword(actorID, actorRole, targetID string, req dto.ChangePasswordRequest) error {
	if len(req.NewPassword) < 6 {
		return fmt.Errorf("%w: la contraseña debe tener al menos 6 caracteres", domain.ErrInvalidInput)
	}

	target, err := uc.userRepo.GetByID(targetID)
	if err != nil {
		return err
	}

	switch {
	case actorID == targetID:
		if err := bcrypt.CompareHashAndPassword([]byte(target.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			return fmt.Errorf("%w: contraseña actual incorrecta", domain.ErrUnauthorized)
		}
	case actorRole == entity.RoleOwner:
		// el owner no necesita la contraseña actual del otro usuario
	default:
		return domain.ErrForbidden
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("usuarios: hasheando contraseña: %w", err)
	}
	return uc.userRepo.UpdatePassword(targetID, string(hash))
}

// Delete elimina un usuario. Un usuario no puede eliminarse a sí mismo, y si
// está referenciado por ventas/movimientos/gastos la persistencia responde
// ErrConflict.
func (uc *UserUseCase) Delete(actorID, targetID string) error {
	if actorID == targetID {
		return fmt.Errorf("%w: no puedes eliminar tu propio usuario", domain.ErrConflict)
	}
	return uc.userRepo.Delete(targetID)
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
