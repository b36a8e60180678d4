package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gungun-1908/InsightCart/internal/catalog"
	"github.com/gungun-1908/InsightCart/internal/domain"
	"github.com/gungun-1908/InsightCart/internal/repository"
	apperrors "github.com/gungun-1908/InsightCart/pkg/errors"
)

// AddItemInput holds the parameters for adding a product to the cart.
type AddItemInput struct {
	ProductID   string  `json:"product_id" validate:"required"`
	ProductName string  `json:"product_name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// AddItemResult is the cart after an add plus the user-facing confirmation.
type AddItemResult struct {
	Message string      `json:"message"`
	Cart    domain.Cart `json:"cart"`
}

// LoginInput holds login credentials, forwarded to the backend as-is.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is the outcome of a register or login: the backend's message,
// the session email now in effect, and the user's recommendations. The
// recommendation fetch is best-effort; Recommendations is nil when it fails
// or the user has none.
type AuthResult struct {
	Message         string           `json:"message"`
	Email           string           `json:"email"`
	Recommendations []domain.Product `json:"recommendations,omitempty"`
}

// StorefrontService implements the storefront's business logic: cart and
// session management plus the product flows proxied to the catalog backend.
type StorefrontService struct {
	store   repository.Store
	backend catalog.Backend
	logger  *slog.Logger
}

// NewStorefrontService creates a new storefront service.
func NewStorefrontService(store repository.Store, backend catalog.Backend, logger *slog.Logger) *StorefrontService {
	return &StorefrontService{
		store:   store,
		backend: backend,
		logger:  logger,
	}
}

// Session returns the logged-in email for a client, or empty string.
func (s *StorefrontService) Session(ctx context.Context, clientID string) (string, error) {
	if clientID == "" {
		return "", apperrors.InvalidInput("client id is required")
	}
	email, err := s.store.GetSession(ctx, clientID)
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}
	return email, nil
}

// GetCart retrieves the client's cart. Clients with no stored cart get an
// empty one.
func (s *StorefrontService) GetCart(ctx context.Context, clientID string) (domain.Cart, error) {
	if clientID == "" {
		return nil, apperrors.InvalidInput("client id is required")
	}
	cart, err := s.store.GetCart(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

// AddItem adds a product to the client's cart. The session check comes
// before any cart access: without a logged-in session the cart is never
// read or written.
func (s *StorefrontService) AddItem(ctx context.Context, clientID string, input AddItemInput) (AddItemResult, error) {
	if clientID == "" {
		return AddItemResult{}, apperrors.InvalidInput("client id is required")
	}

	email, err := s.store.GetSession(ctx, clientID)
	if err != nil {
		return AddItemResult{}, fmt.Errorf("get session: %w", err)
	}
	if email == "" {
		return AddItemResult{}, apperrors.LoginRequired("purchasing")
	}

	cart, err := s.store.GetCart(ctx, clientID)
	if err != nil {
		return AddItemResult{}, fmt.Errorf("get cart: %w", err)
	}

	cart.Add(input.ProductID, input.ProductName, input.Price)

	if err := s.store.SaveCart(ctx, clientID, cart); err != nil {
		return AddItemResult{}, fmt.Errorf("save cart: %w", err)
	}

	cartAddsTotal.Inc()
	s.logger.InfoContext(ctx, "item added to cart",
		"product_id", input.ProductID,
		"quantity", cart[cart.FindIndex(input.ProductID)].Quantity,
	)

	return AddItemResult{
		Message: fmt.Sprintf("%s has been added to your cart!", input.ProductName),
		Cart:    cart,
	}, nil
}

// Checkout submits the client's cart as a transaction. The session check
// comes first, then the empty-cart check; the cart is cleared only after
// the backend confirms the transaction, so a failed submission leaves the
// cart intact for a retry.
func (s *StorefrontService) Checkout(ctx context.Context, clientID string) (domain.CheckoutResult, error) {
	if clientID == "" {
		return domain.CheckoutResult{}, apperrors.InvalidInput("client id is required")
	}

	email, err := s.store.GetSession(ctx, clientID)
	if err != nil {
		return domain.CheckoutResult{}, fmt.Errorf("get session: %w", err)
	}
	if email == "" {
		return domain.CheckoutResult{}, apperrors.LoginRequired("checking out")
	}

	cart, err := s.store.GetCart(ctx, clientID)
	if err != nil {
		return domain.CheckoutResult{}, fmt.Errorf("get cart: %w", err)
	}
	if len(cart) == 0 {
		return domain.CheckoutResult{}, apperrors.EmptyCart()
	}

	result, err := s.backend.SaveTransaction(ctx, domain.Transaction{
		UserEmail: email,
		Items:     cart,
	})
	if err != nil {
		checkoutsTotal.WithLabelValues("failed").Inc()
		return domain.CheckoutResult{}, err
	}

	if err := s.store.DeleteCart(ctx, clientID); err != nil {
		// The transaction is already recorded; a stale cart is the lesser
		// problem and the next successful checkout will clear it.
		s.logger.ErrorContext(ctx, "failed to clear cart after checkout", "error", err)
	}

	checkoutsTotal.WithLabelValues("success").Inc()
	s.logger.InfoContext(ctx, "checkout completed",
		"transaction_id", result.TransactionID,
		"items", cart.ItemCount(),
		"total", cart.TotalAmount(),
	)

	return result, nil
}

// Register creates an account on the backend, stores the session, and
// fetches the new user's recommendations.
func (s *StorefrontService) Register(ctx context.Context, clientID string, fields map[string]string) (AuthResult, error) {
	if clientID == "" {
		return AuthResult{}, apperrors.InvalidInput("client id is required")
	}
	email := fields["email"]
	if email == "" {
		return AuthResult{}, apperrors.InvalidInput("email is required")
	}

	message, err := s.backend.Register(ctx, fields)
	if err != nil {
		return AuthResult{}, err
	}

	return s.establishSession(ctx, clientID, email, message)
}

// Login authenticates against the backend, stores the session, and fetches
// the user's recommendations.
func (s *StorefrontService) Login(ctx context.Context, clientID string, input LoginInput) (AuthResult, error) {
	if clientID == "" {
		return AuthResult{}, apperrors.InvalidInput("client id is required")
	}

	message, err := s.backend.Login(ctx, input.Email, input.Password)
	if err != nil {
		return AuthResult{}, err
	}

	return s.establishSession(ctx, clientID, input.Email, message)
}

// establishSession records the session and fetches recommendations. The
// recommendation fetch is best-effort: the user is logged in either way.
func (s *StorefrontService) establishSession(ctx context.Context, clientID, email, message string) (AuthResult, error) {
	if err := s.store.SetSession(ctx, clientID, email); err != nil {
		return AuthResult{}, fmt.Errorf("set session: %w", err)
	}

	s.logger.InfoContext(ctx, "session established", "email", email)

	recommendations, err := s.backend.Recommendations(ctx, email)
	if err != nil {
		s.logger.WarnContext(ctx, "recommendation fetch failed after login", "error", err)
		recommendations = nil
	}

	return AuthResult{
		Message:         message,
		Email:           email,
		Recommendations: recommendations,
	}, nil
}

// MostBought returns the backend's best sellers.
func (s *StorefrontService) MostBought(ctx context.Context) ([]domain.Product, error) {
	return s.backend.MostBought(ctx)
}

// Recommendations returns recommendations for the client's logged-in user.
func (s *StorefrontService) Recommendations(ctx context.Context, clientID string) ([]domain.Product, error) {
	if clientID == "" {
		return nil, apperrors.InvalidInput("client id is required")
	}

	email, err := s.store.GetSession(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if email == "" {
		return nil, apperrors.LoginRequired("viewing recommendations")
	}

	return s.backend.Recommendations(ctx, email)
}

// Search returns products matching the query.
func (s *StorefrontService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	if query == "" {
		return nil, apperrors.InvalidInput("search query is required")
	}
	return s.backend.Search(ctx, query)
}

// SyncShowcase pushes the page's showcase products to the backend catalog.
// Called once at startup so the statically rendered products are searchable.
func (s *StorefrontService) SyncShowcase(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	if err := s.backend.SaveProducts(ctx, products); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "showcase products synced", "count", len(products))
	return nil
}
