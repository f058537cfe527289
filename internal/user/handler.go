package user

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"
)

const birthDateLayout = "2006-01-02"

type Handler struct {
	userService Service
}

func NewHandler(userService Service) *Handler {
	return &Handler{
		userService: userService,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("JSON encoding error: %v", err)
	}
}

func respondStatus(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

// optionalDate tracks whether the birth_date key was present in the payload.
// A present-but-null birth date is accepted, a missing key is rejected.
type optionalDate struct {
	Present bool
	Value   *time.Time
}

func (o *optionalDate) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(birthDateLayout, s)
	if err != nil {
		return err
	}
	o.Value = &t
	return nil
}

type userRow struct {
	ID           int        `json:"id"`
	LastLogin    *time.Time `json:"last_login"`
	Nickname     string     `json:"nickname"`
	FullName     string     `json:"full_name"`
	ShortName    string     `json:"short_name"`
	Email        string     `json:"email"`
	Gender       string     `json:"gender"`
	BirthDate    *string    `json:"birth_date"`
	IsActive     bool       `json:"is_active"`
	RegisterDate time.Time  `json:"register_date"`
	DeleteDate   *time.Time `json:"delete_date"`
	Role         string     `json:"role"`
}

func formatBirthDate(birthDate *time.Time) *string {
	if birthDate == nil {
		return nil
	}
	s := birthDate.Format(birthDateLayout)
	return &s
}

// HandleViewAllUsers lists every user, active and inactive, newest
// registration first.
func (h *Handler) HandleViewAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers()
	if err != nil {
		respondStatus(w, http.StatusInternalServerError)
		return
	}
	if len(users) == 0 {
		respondStatus(w, http.StatusNoContent)
		return
	}

	rows := make([]userRow, 0, len(users))
	for i := range users {
		u := &users[i]
		genderLabel, err := u.Gender.Label()
		if err != nil {
			log.Printf("user %d: %v", u.ID, err)
			respondStatus(w, http.StatusInternalServerError)
			return
		}
		roleLabel, err := u.Role.Label()
		if err != nil {
			log.Printf("user %d: %v", u.ID, err)
			respondStatus(w, http.StatusInternalServerError)
			return
		}
		rows = append(rows, userRow{
			ID:           u.ID,
			LastLogin:    u.LastLogin,
			Nickname:     u.Nickname,
			FullName:     u.FullName,
			ShortName:    u.ShortName(),
			Email:        u.Email,
			Gender:       genderLabel,
			BirthDate:    formatBirthDate(u.BirthDate),
			IsActive:     u.IsActive,
			RegisterDate: u.RegisterDate,
			DeleteDate:   u.DeleteDate,
			Role:         roleLabel,
		})
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"users": rows})
}

func (h *Handler) HandleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      *string      `json:"name"`
		Email     *string      `json:"email"`
		Nickname  *string      `json:"nickname"`
		Password  *string      `json:"password"`
		BirthDate optionalDate `json:"birth_date"`
		Gender    *int         `json:"gender"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondStatus(w, http.StatusBadRequest)
		return
	}
	if req.Name == nil || req.Email == nil || req.Nickname == nil ||
		req.Password == nil || !req.BirthDate.Present || req.Gender == nil {
		respondStatus(w, http.StatusBadRequest)
		return
	}

	_, err := h.userService.Register(*req.Name, *req.Email, *req.Nickname, *req.Password, req.BirthDate.Value, Gender(*req.Gender))
	if err != nil {
		if errors.Is(err, ErrInvalidEmail) || errors.Is(err, ErrInvalidGender) {
			respondStatus(w, http.StatusBadRequest)
			return
		}
		respondStatus(w, http.StatusInternalServerError)
		return
	}
	respondStatus(w, http.StatusOK)
}

func (h *Handler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID    *int         `json:"user_id"`
		Name      *string      `json:"name"`
		BirthDate optionalDate `json:"birth_date"`
		Gender    *int         `json:"gender"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondStatus(w, http.StatusBadRequest)
		return
	}
	if req.UserID == nil || req.Name == nil || !req.BirthDate.Present || req.Gender == nil {
		respondStatus(w, http.StatusBadRequest)
		return
	}

	updated, err := h.userService.Update(*req.UserID, *req.Name, req.BirthDate.Value, Gender(*req.Gender))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			respondStatus(w, http.StatusNotFound)
			return
		}
		if errors.Is(err, ErrInvalidGender) {
			respondStatus(w, http.StatusBadRequest)
			return
		}
		respondStatus(w, http.StatusInternalServerError)
		return
	}

	genderLabel, err := updated.Gender.Label()
	if err != nil {
		log.Printf("user %d: %v", updated.ID, err)
		respondStatus(w, http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user": map[string]interface{}{
			"id":         updated.ID,
			"nickname":   updated.Nickname,
			"full_name":  updated.FullName,
			"email":      updated.Email,
			"gender":     genderLabel,
			"birth_date": formatBirthDate(updated.BirthDate),
		},
	})
}

func (h *Handler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID *int `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondStatus(w, http.StatusBadRequest)
		return
	}
	if req.UserID == nil {
		respondStatus(w, http.StatusBadRequest)
		return
	}

	if err := h.userService.Delete(*req.UserID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			respondStatus(w, http.StatusNotFound)
			return
		}
		respondStatus(w, http.StatusInternalServerError)
		return
	}
	respondStatus(w, http.StatusOK)
}
