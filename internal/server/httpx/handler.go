package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/server/services"
	"github.com/dmitrijs2005/contactkeeper/internal/server/validation"
)

const (
	msgUserExists = "User already exists"

	maxBodyBytes = 1 << 20
)

// UserService is the registration API consumed by the handler.
type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (*services.Registration, error)
}

type registerResponse struct {
	Token string `json:"token"`
}

type validationResponse struct {
	Errors validation.Errors `json:"errors"`
}

func (rt *Router) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	in := rt.decodeRegisterInput(ctx, w, r)

	reg, err := rt.users.Register(ctx, in)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			writeJSON(w, http.StatusBadRequest, validationResponse{Errors: verrs})
		case errors.Is(err, common.ErrorAlreadyExists):
			writeMsg(w, http.StatusBadRequest, msgUserExists)
		default:
			rt.logger.Error(ctx, err.Error())
			writeServerError(w)
		}
		return
	}

	rt.logger.Info(ctx, "user registered", "user_id", reg.User.ID)
	writeJSON(w, http.StatusOK, registerResponse{Token: reg.Token})
}

// decodeRegisterInput reads the JSON body. A body that is not a JSON object
// yields an empty input, which then fails every field rule.
func (rt *Router) decodeRegisterInput(ctx context.Context, w http.ResponseWriter, r *http.Request) services.RegisterInput {
	body := map[string]any{}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		rt.logger.Debug(ctx, "unreadable request body", "error", err.Error())
		body = map[string]any{}
	}

	name := bodyString(body, "name")
	if name == nil {
		name = bodyString(body, "username")
	}

	return services.RegisterInput{
		Name:     name,
		Email:    bodyString(body, "email"),
		Password: bodyString(body, "password"),
	}
}

// bodyString returns the string form of body[key], or nil when the key is
// absent or null. Numbers and booleans are formatted, objects and arrays
// become the empty string.
func bodyString(body map[string]any, key string) *string {
	v, ok := body[key]
	if !ok || v == nil {
		return nil
	}

	var s string
	switch value := v.(type) {
	case string:
		s = value
	case float64:
		s = strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(value)
	}
	return &s
}

func (rt *Router) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if rt.health != nil {
		if err := rt.health(r.Context()); err != nil {
			rt.logger.Warn(r.Context(), "health check failed", "error", err.Error())
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
