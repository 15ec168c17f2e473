package handler

import (
	"time"

	"chaintrace/internal/domain/entity"
	"chaintrace/internal/usecase"

	"github.com/google/uuid"
)

// Entities carry no JSON tags; these views fix the wire names the client reads.

type userView struct {
	ID             uuid.UUID              `json:"id"`
	Username       string                 `json:"username"`
	Email          string                 `json:"email,omitempty"`
	WalletAddress  string                 `json:"walletAddress"`
	Role           entity.Role            `json:"role"`
	Profile        entity.Profile         `json:"profile"`
	CompanyProfile *entity.CompanyProfile `json:"companyProfile,omitempty"`
	Preferences    *entity.Preferences    `json:"preferences,omitempty"`
	IsActive       bool                   `json:"isActive"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// newUserView hides the email and preferences (cart, wishlist) unless the
// viewer owns the account.
func newUserView(u *entity.User, owner bool) *userView {
	if u == nil {
		return nil
	}

	view := &userView{
		ID:             u.ID,
		Username:       u.Username,
		WalletAddress:  u.WalletAddress,
		Role:           u.Role,
		Profile:        u.Profile,
		CompanyProfile: u.CompanyProfile,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
	if owner {
		prefs := u.Preferences
		view.Email = u.Email
		view.Preferences = &prefs
	}

	return view
}

type authView struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresIn    int64     `json:"expiresIn"`
	User         *userView `json:"user"`
}

func newAuthView(out *usecase.AuthOutput) authView {
	return authView{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		ExpiresIn:    out.ExpiresIn,
		User:         newUserView(out.User, true),
	}
}

type productView struct {
	ID                uuid.UUID               `json:"id"`
	Kind              entity.ProductKind      `json:"kind"`
	Name              string                  `json:"name"`
	Price             float64                 `json:"price"`
	Location          string                  `json:"location"`
	AddedBy           string                  `json:"addedBy"`
	Description       string                  `json:"description,omitempty"`
	Category          string                  `json:"category,omitempty"`
	Images            []string                `json:"images,omitempty"`
	Specifications    map[string]string       `json:"specifications,omitempty"`
	SKU               string                  `json:"sku,omitempty"`
	AvailableQuantity *int                    `json:"availableQuantity,omitempty"`
	Unit              string                  `json:"unit,omitempty"`
	Payments          []entity.ListingPayment `json:"payments"`
	IsActive          bool                    `json:"isActive"`
	CreatedAt         time.Time               `json:"createdAt"`
	UpdatedAt         time.Time               `json:"updatedAt"`
}

func newProductView(p *entity.Product) *productView {
	payments := p.Payments
	if payments == nil {
		payments = []entity.ListingPayment{}
	}

	return &productView{
		ID:                p.ID,
		Kind:              p.Kind,
		Name:              p.Name,
		Price:             p.Price,
		Location:          p.Location,
		AddedBy:           p.AddedBy,
		Description:       p.Description,
		Category:          p.Category,
		Images:            p.Images,
		Specifications:    p.Specifications,
		SKU:               p.SKU,
		AvailableQuantity: p.AvailableQuantity,
		Unit:              p.Unit,
		Payments:          payments,
		IsActive:          p.IsActive,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func newProductViews(products []*entity.Product) []*productView {
	views := make([]*productView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}

	return views
}

type paymentView struct {
	ID                 uuid.UUID              `json:"id"`
	BuyerWalletAddress string                 `json:"buyerWalletAddress"`
	BuyerName          string                 `json:"buyerName,omitempty"`
	Quantity           int                    `json:"quantity"`
	Amount             float64                `json:"amount"`
	TransactionHash    string                 `json:"transactionHash"`
	Date               time.Time              `json:"date"`
	DeliveryAddress    entity.PostalAddress   `json:"deliveryAddress"`
	EstimatedDelivery  *time.Time             `json:"estimatedDelivery,omitempty"`
	ActualDelivery     *time.Time             `json:"actualDelivery,omitempty"`
	CurrentStatus      entity.TrackingStatus  `json:"currentStatus"`
	TrackingEvents     []entity.TrackingEvent `json:"trackingEvents"`
}

func newPaymentView(p *entity.MaterialPayment) paymentView {
	return paymentView{
		ID:                 p.ID,
		BuyerWalletAddress: p.BuyerWalletAddress,
		BuyerName:          p.BuyerName,
		Quantity:           p.Quantity,
		Amount:             p.Amount,
		TransactionHash:    p.TransactionHash,
		Date:               p.Date,
		DeliveryAddress:    p.DeliveryAddress,
		EstimatedDelivery:  p.EstimatedDelivery,
		ActualDelivery:     p.Tracking.ActualDelivery,
		CurrentStatus:      p.Tracking.CurrentStatus,
		TrackingEvents:     events(p.Tracking.Events),
	}
}

type rawMaterialView struct {
	ID                uuid.UUID     `json:"id"`
	Name              string        `json:"name"`
	Description       string        `json:"description,omitempty"`
	Category          string        `json:"category,omitempty"`
	Price             float64       `json:"price"`
	Location          string        `json:"location,omitempty"`
	AddedBy           string        `json:"addedBy"`
	SupplierName      string        `json:"supplierName,omitempty"`
	AvailableQuantity *int          `json:"availableQuantity,omitempty"`
	Unit              string        `json:"unit,omitempty"`
	Payments          []paymentView `json:"payments"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

func newRawMaterialView(m *entity.RawMaterial) *rawMaterialView {
	payments := make([]paymentView, 0, len(m.Payments))
	for i := range m.Payments {
		payments = append(payments, newPaymentView(&m.Payments[i]))
	}

	return &rawMaterialView{
		ID:                m.ID,
		Name:              m.Name,
		Description:       m.Description,
		Category:          m.Category,
		Price:             m.Price,
		Location:          m.Location,
		AddedBy:           m.AddedBy,
		SupplierName:      m.SupplierName,
		AvailableQuantity: m.AvailableQuantity,
		Unit:              m.Unit,
		Payments:          payments,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func newRawMaterialViews(materials []*entity.RawMaterial) []*rawMaterialView {
	views := make([]*rawMaterialView, 0, len(materials))
	for _, m := range materials {
		views = append(views, newRawMaterialView(m))
	}

	return views
}

type purchaseView struct {
	ID                 uuid.UUID              `json:"id"`
	PurchaseID         string                 `json:"purchaseId"`
	ProductID          string                 `json:"productId,omitempty"`
	ProductName        string                 `json:"productName"`
	ProductDescription string                 `json:"productDescription,omitempty"`
	Quantity           int                    `json:"quantity"`
	UnitPrice          float64                `json:"unitPrice"`
	TotalAmount        float64                `json:"totalAmount"`
	CustomerWallet     string                 `json:"customerId"`
	CustomerName       string                 `json:"customerName,omitempty"`
	ProducerWallet     string                 `json:"producerId"`
	ProducerName       string                 `json:"producerName,omitempty"`
	TransactionHash    string                 `json:"transactionHash"`
	DeliveryAddress    entity.PostalAddress   `json:"deliveryAddress"`
	EstimatedDelivery  time.Time              `json:"estimatedDelivery"`
	ActualDelivery     *time.Time             `json:"actualDelivery,omitempty"`
	CurrentStatus      entity.TrackingStatus  `json:"currentStatus"`
	TrackingEvents     []entity.TrackingEvent `json:"trackingEvents"`
	IsActive           bool                   `json:"isActive"`
	CreatedAt          time.Time              `json:"createdAt"`
	UpdatedAt          time.Time              `json:"updatedAt"`
}

func newPurchaseView(p *entity.Purchase) *purchaseView {
	return &purchaseView{
		ID:                 p.ID,
		PurchaseID:         p.PurchaseID,
		ProductID:          p.ProductID,
		ProductName:        p.ProductName,
		ProductDescription: p.ProductDescription,
		Quantity:           p.Quantity,
		UnitPrice:          p.UnitPrice,
		TotalAmount:        p.TotalAmount,
		CustomerWallet:     p.CustomerWallet,
		CustomerName:       p.CustomerName,
		ProducerWallet:     p.ProducerWallet,
		ProducerName:       p.ProducerName,
		TransactionHash:    p.TransactionHash,
		DeliveryAddress:    p.DeliveryAddress,
		EstimatedDelivery:  p.EstimatedDelivery,
		ActualDelivery:     p.Tracking.ActualDelivery,
		CurrentStatus:      p.Tracking.CurrentStatus,
		TrackingEvents:     events(p.Tracking.Events),
		IsActive:           p.IsActive,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func newPurchaseViews(purchases []*entity.Purchase) []*purchaseView {
	views := make([]*purchaseView, 0, len(purchases))
	for _, p := range purchases {
		views = append(views, newPurchaseView(p))
	}

	return views
}

type timelineEntryView struct {
	entity.TrackingEvent
	DurationHuman          string   `json:"durationHuman,omitempty"`
	DistanceFromPreviousKm *float64 `json:"distanceFromPreviousKm,omitempty"`
}

type trackingView struct {
	Purchase *purchaseView       `json:"purchase"`
	Timeline []timelineEntryView `json:"timeline"`
	Progress int                 `json:"progress"`
}

func newTrackingView(v *usecase.TrackingView) trackingView {
	timeline := make([]timelineEntryView, 0, len(v.Timeline))
	for _, entry := range v.Timeline {
		timeline = append(timeline, timelineEntryView{
			TrackingEvent:          entry.TrackingEvent,
			DurationHuman:          entry.DurationHuman,
			DistanceFromPreviousKm: entry.DistanceFromPreviousKm,
		})
	}

	return trackingView{
		Purchase: newPurchaseView(v.Purchase),
		Timeline: timeline,
		Progress: v.Progress,
	}
}

type materialTrackingView struct {
	MaterialID uuid.UUID            `json:"materialId"`
	Payment    paymentView          `json:"payment"`
	Event      entity.TrackingEvent `json:"event"`
}

type recommendationView struct {
	Kind        string           `json:"kind"`
	Score       float64          `json:"score"`
	Reasons     []string         `json:"reasons"`
	Product     *productView     `json:"product,omitempty"`
	RawMaterial *rawMaterialView `json:"rawMaterial,omitempty"`
}

func newRecommendationViews(recs []usecase.Recommendation) []recommendationView {
	views := make([]recommendationView, 0, len(recs))
	for _, r := range recs {
		view := recommendationView{Kind: r.Kind, Score: r.Score, Reasons: r.Reasons}
		if r.Product != nil {
			view.Product = newProductView(r.Product)
		}
		if r.RawMaterial != nil {
			view.RawMaterial = newRawMaterialView(r.RawMaterial)
		}
		views = append(views, view)
	}

	return views
}

func events(evs []entity.TrackingEvent) []entity.TrackingEvent {
	if evs == nil {
		return []entity.TrackingEvent{}
	}

	return evs
}
