package auth

import (
	"errors"
	"strings"
	"sync"

	"eatz-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRole        = errors.New("role must be GM or RM")
	ErrNotDemoSession     = errors.New("role switching is only available for demo sessions")
)

// firstAccountID leaves room for the demo personas and seeded proposers.
const firstAccountID = 100

var demoUsers = map[models.UserRole]models.User{
	models.RoleGM: {ID: 1, Name: "Alex Johnson", Role: models.RoleGM},
	models.RoleRM: {ID: 2, Name: "Benny Carter", Role: models.RoleRM, Region: "Jakarta"},
}

// DemoUser returns the built-in persona for a role.
func DemoUser(role models.UserRole) (models.User, bool) {
	u, ok := demoUsers[role]
	return u, ok
}

// SwitchDemoRole returns the demo persona on the other side of u's role.
// Registered accounts keep the role they signed up with.
func SwitchDemoRole(u models.User) (models.User, error) {
	current, ok := DemoUser(u.Role)
	if !ok || current.ID != u.ID {
		return models.User{}, ErrNotDemoSession
	}

	next := models.RoleGM
	if u.Role == models.RoleGM {
		next = models.RoleRM
	}
	switched, _ := DemoUser(next)
	switched.Email = u.Email
	return switched, nil
}

type account struct {
	user         models.User
	passwordHash string
}

// Directory is the in-memory account book behind login and register.
type Directory struct {
	mu      sync.RWMutex
	byEmail map[string]*account
	nextID  uint
}

func NewDirectory() *Directory {
	return &Directory{
		byEmail: make(map[string]*account),
		nextID:  firstAccountID,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     models.UserRole
	Region   string
}

func (d *Directory) Register(in RegisterInput) (models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	region := strings.TrimSpace(in.Region)

	if name == "" || email == "" || in.Password == "" {
		return models.User{}, errors.New("name, email and password are required")
	}
	if !in.Role.IsValid() {
		return models.User{}, ErrInvalidRole
	}
	if in.Role == models.RoleRM && region == "" {
		return models.User{}, errors.New("region is required for region managers")
	}
	if in.Role == models.RoleGM {
		region = ""
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.byEmail[email]; exists {
		return models.User{}, ErrEmailTaken
	}

	user := models.User{
		ID:     d.nextID,
		Name:   name,
		Email:  email,
		Role:   in.Role,
		Region: region,
	}
	d.nextID++
	d.byEmail[email] = &account{user: user, passwordHash: string(hash)}
	return user, nil
}

// Authenticate resolves the session identity. Registered emails must match
// their password; any other email signs in as the demo persona of role.
func (d *Directory) Authenticate(email, password string, role models.UserRole) (models.User, error) {
	email = normalizeEmail(email)

	d.mu.RLock()
	acc, ok := d.byEmail[email]
	d.mu.RUnlock()

	if ok {
		if err := bcrypt.CompareHashAndPassword([]byte(acc.passwordHash), []byte(password)); err != nil {
			return models.User{}, ErrInvalidCredentials
		}
		return acc.user, nil
	}

	user, ok := DemoUser(role)
	if !ok {
		return models.User{}, ErrInvalidRole
	}
	user.Email = email
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
