package postgres

import (
	"chaintrace/internal/domain/entity"
	"chaintrace/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:             m.ID,
		Username:       m.Username,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		WalletAddress:  m.WalletAddress,
		Role:           entity.Role(m.Role),
		Profile:        m.Profile.Data(),
		CompanyProfile: m.CompanyProfile.Data(),
		Preferences:    m.Preferences.Data(),
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:             u.ID,
		Username:       entity.NormalizeIdentifier(u.Username),
		Email:          entity.NormalizeIdentifier(u.Email),
		PasswordHash:   u.PasswordHash,
		WalletAddress:  entity.NormalizeWallet(u.WalletAddress),
		Role:           u.Role.String(),
		Profile:        datatypes.NewJSONType(u.Profile),
		CompanyProfile: datatypes.NewJSONType(u.CompanyProfile),
		Preferences:    datatypes.NewJSONType(u.Preferences),
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:                m.ID,
		Kind:              entity.ProductKind(m.Kind),
		Name:              m.Name,
		Price:             m.Price,
		Location:          m.Location,
		AddedBy:           m.AddedBy,
		Description:       m.Description,
		Category:          m.Category,
		Images:            []string(m.Images),
		Specifications:    m.Specifications.Data(),
		SKU:               m.SKU,
		AvailableQuantity: m.AvailableQuantity,
		Unit:              m.Unit,
		Payments:          []entity.ListingPayment(m.Payments),
		IsActive:          m.IsActive,
		Version:           m.Version,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func fromProductDomain(p *entity.Product) *model.ProductModel {
	payments := p.Payments
	if payments == nil {
		payments = []entity.ListingPayment{}
	}

	return &model.ProductModel{
		ID:                p.ID,
		Kind:              string(p.Kind),
		Name:              p.Name,
		Price:             p.Price,
		Location:          p.Location,
		AddedBy:           entity.NormalizeWallet(p.AddedBy),
		Description:       p.Description,
		Category:          p.Category,
		Images:            datatypes.JSONSlice[string](p.Images),
		Specifications:    datatypes.NewJSONType(p.Specifications),
		SKU:               p.SKU,
		AvailableQuantity: p.AvailableQuantity,
		Unit:              p.Unit,
		Payments:          datatypes.JSONSlice[entity.ListingPayment](payments),
		IsActive:          p.IsActive,
		Version:           p.Version,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toRawMaterialDomain(m *model.RawMaterialModel) *entity.RawMaterial {
	payments := make([]entity.MaterialPayment, 0, len(m.Payments))
	for i := range m.Payments {
		payments = append(payments, toMaterialPaymentDomain(&m.Payments[i]))
	}

	return &entity.RawMaterial{
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
		Version:           m.Version,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func fromRawMaterialDomain(r *entity.RawMaterial) *model.RawMaterialModel {
	payments := make([]model.MaterialPaymentDocument, 0, len(r.Payments))
	for i := range r.Payments {
		payments = append(payments, fromMaterialPaymentDomain(&r.Payments[i]))
	}

	return &model.RawMaterialModel{
		ID:                r.ID,
		Name:              r.Name,
		Description:       r.Description,
		Category:          r.Category,
		Price:             r.Price,
		Location:          r.Location,
		AddedBy:           entity.NormalizeWallet(r.AddedBy),
		SupplierName:      r.SupplierName,
		AvailableQuantity: r.AvailableQuantity,
		Unit:              r.Unit,
		Payments:          datatypes.JSONSlice[model.MaterialPaymentDocument](payments),
		Version:           r.Version,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func toMaterialPaymentDomain(d *model.MaterialPaymentDocument) entity.MaterialPayment {
	return entity.MaterialPayment{
		ID:                 d.ID,
		BuyerWalletAddress: d.BuyerWalletAddress,
		BuyerName:          d.BuyerName,
		Quantity:           d.Quantity,
		Amount:             d.Amount,
		TransactionHash:    d.TransactionHash,
		Date:               d.Date,
		DeliveryAddress:    d.DeliveryAddress,
		EstimatedDelivery:  d.EstimatedDelivery,
		Tracking: entity.TrackingLog{
			CurrentStatus:  d.CurrentStatus,
			Events:         toEventsDomain(d.TrackingEvents),
			ActualDelivery: d.ActualDelivery,
		},
	}
}

func fromMaterialPaymentDomain(p *entity.MaterialPayment) model.MaterialPaymentDocument {
	return model.MaterialPaymentDocument{
		ID:                 p.ID,
		BuyerWalletAddress: entity.NormalizeWallet(p.BuyerWalletAddress),
		BuyerName:          p.BuyerName,
		Quantity:           p.Quantity,
		Amount:             p.Amount,
		TransactionHash:    p.TransactionHash,
		Date:               p.Date,
		DeliveryAddress:    p.DeliveryAddress,
		EstimatedDelivery:  p.EstimatedDelivery,
		ActualDelivery:     p.Tracking.ActualDelivery,
		CurrentStatus:      p.Tracking.CurrentStatus,
		TrackingEvents:     fromEventsDomain(p.Tracking.Events),
	}
}

func toPurchaseDomain(m *model.PurchaseModel) *entity.Purchase {
	return &entity.Purchase{
		ID:                 m.ID,
		PurchaseID:         m.PurchaseID,
		ProductID:          m.ProductID,
		ProductName:        m.ProductName,
		ProductDescription: m.ProductDescription,
		Quantity:           m.Quantity,
		UnitPrice:          m.UnitPrice,
		TotalAmount:        m.TotalAmount,
		CustomerWallet:     m.CustomerWallet,
		CustomerName:       m.CustomerName,
		ProducerWallet:     m.ProducerWallet,
		ProducerName:       m.ProducerName,
		TransactionHash:    m.TransactionHash,
		DeliveryAddress:    m.DeliveryAddress.Data(),
		EstimatedDelivery:  m.EstimatedDelivery,
		Tracking: entity.TrackingLog{
			CurrentStatus:  entity.TrackingStatus(m.CurrentStatus),
			Events:         toEventsDomain(m.TrackingEvents),
			ActualDelivery: m.ActualDelivery,
		},
		IsActive:  m.IsActive,
		Version:   m.Version,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromPurchaseDomain(p *entity.Purchase) *model.PurchaseModel {
	return &model.PurchaseModel{
		ID:                 p.ID,
		PurchaseID:         p.PurchaseID,
		ProductID:          p.ProductID,
		ProductName:        p.ProductName,
		ProductDescription: p.ProductDescription,
		Quantity:           p.Quantity,
		UnitPrice:          p.UnitPrice,
		TotalAmount:        p.TotalAmount,
		CustomerWallet:     entity.NormalizeWallet(p.CustomerWallet),
		CustomerName:       p.CustomerName,
		ProducerWallet:     entity.NormalizeWallet(p.ProducerWallet),
		ProducerName:       p.ProducerName,
		TransactionHash:    p.TransactionHash,
		CurrentStatus:      string(p.Tracking.CurrentStatus),
		TrackingEvents:     datatypes.JSONSlice[model.TrackingEventDocument](fromEventsDomain(p.Tracking.Events)),
		DeliveryAddress:    datatypes.NewJSONType(p.DeliveryAddress),
		EstimatedDelivery:  p.EstimatedDelivery,
		ActualDelivery:     p.Tracking.ActualDelivery,
		IsActive:           p.IsActive,
		Version:            p.Version,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func toEventsDomain(docs []model.TrackingEventDocument) []entity.TrackingEvent {
	events := make([]entity.TrackingEvent, len(docs))
	for i := range docs {
		events[i] = entity.TrackingEvent(docs[i])
	}

	return events
}

func fromEventsDomain(events []entity.TrackingEvent) []model.TrackingEventDocument {
	docs := make([]model.TrackingEventDocument, len(events))
	for i := range events {
		docs[i] = model.TrackingEventDocument(events[i])
	}

	return docs
}
