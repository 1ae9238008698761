// Package auth contiene el SessionGate: el dueño exclusivo de la credencial
// del administrador y del registro de sesión persistido.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/angelart-catalog/internal/domain"
	"github.com/tu-usuario/angelart-catalog/internal/domain/entity"
	"github.com/tu-usuario/angelart-catalog/internal/domain/repository"
	"github.com/tu-usuario/angelart-catalog/pkg/logger"
)

// Claves del almacén local. Se conservan los nombres históricos.
const (
	SessionKey    = "angelArtWorld_auth"
	CredentialKey = "admin_pwd_hash"
)

// Gate decide si la superficie de administración puede operar. Dos estados
// observables: LoggedOut y LoggedIn. La credencial se crea perezosamente en
// el primer login y no se rota ni se borra.
type Gate struct {
	kv         repository.KV
	adminEmail string
	log        *logger.Logger
}

// NewGate construye el gate para el único email autorizado.
func NewGate(kv repository.KV, adminEmail string, log *logger.Logger) *Gate {
	return &Gate{kv: kv, adminEmail: adminEmail, log: log}
}

// CheckSession lee la sesión persistida. Devuelve (sesión, nil) solo si
// existe, su email es el autorizado y está marcada como activa; en cualquier
// otro caso devuelve (nil, nil): estado LoggedOut. El timestamp se conserva
// pero no se compara contra el reloj; no hay expiración de sesión.
func (g *Gate) CheckSession(ctx context.Context) (*entity.Session, error) {
	raw, err := g.kv.Get(ctx, SessionKey)
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		g.log.Warn().Err(err).Msg("sesión persistida corrupta, se trata como LoggedOut")
		return nil, nil
	}
	if session.Email != g.adminEmail || !session.IsLoggedIn {
		return nil, nil
	}
	return &session, nil
}

// AttemptLogin verifica las credenciales y, en caso de éxito, crea y
// persiste la sesión.
//
//  1. Email distinto del autorizado -> ErrWrongEmail, sin tocar estado.
//  2. Sin credencial almacenada: primer uso. Se almacena el hash bcrypt del
//     password y se concede acceso (no hay nada previo contra qué verificar).
//  3. Con credencial: se compara; ErrWrongPassword si no coincide.
func (g *Gate) AttemptLogin(ctx context.Context, email, password string) (*entity.Session, error) {
	if email != g.adminEmail {
		return nil, domain.ErrWrongEmail
	}

	stored, err := g.kv.Get(ctx, CredentialKey)
	if err != nil {
		return nil, fmt.Errorf("leer credencial: %w", err)
	}
	if stored == nil {
		// Primer uso: establecer el password del administrador.
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashear password: %w", err)
		}
		if err := g.kv.Set(ctx, CredentialKey, hash); err != nil {
			return nil, fmt.Errorf("guardar credencial: %w", err)
		}
		g.log.Info().Msg("credencial de administrador inicializada")
	} else {
		if err := bcrypt.CompareHashAndPassword(stored, []byte(password)); err != nil {
			return nil, domain.ErrWrongPassword
		}
	}

	session := &entity.Session{
		Email:      g.adminEmail,
		IsLoggedIn: true,
		Timestamp:  time.Now().UnixMilli(),
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("serializar sesión: %w", err)
	}
	if err := g.kv.Set(ctx, SessionKey, raw); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	g.log.Info().Str("email", session.Email).Msg("sesión de administrador iniciada")
	return session, nil
}

// Logout elimina la sesión persistida y vuelve a LoggedOut. La credencial
// no se toca.
func (g *Gate) Logout(ctx context.Context) error {
	if err := g.kv.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("eliminar sesión: %w", err)
	}
	g.log.Info().Msg("sesión de administrador cerrada")
	return nil
}
