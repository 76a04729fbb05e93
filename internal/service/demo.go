package service

// Demo fallback datasets, substituted whenever the store is unreachable or the
// initial load exceeds its timeout. Fixed rows so the UI always has something
// coherent to render; IDs are stable so cross-entity references line up.

import (
	"time"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	demoCat1 = uuid.MustParse("00000000-0000-0000-0000-0000000c0001")
	demoCat2 = uuid.MustParse("00000000-0000-0000-0000-0000000c0002")
	demoCat3 = uuid.MustParse("00000000-0000-0000-0000-0000000c0003")
	demoCat4 = uuid.MustParse("00000000-0000-0000-0000-0000000c0004")
	demoCat5 = uuid.MustParse("00000000-0000-0000-0000-0000000c0005")
	demoCat6 = uuid.MustParse("00000000-0000-0000-0000-0000000c0006")

	demoSup1 = uuid.MustParse("00000000-0000-0000-0000-0000000e0001")
	demoSup2 = uuid.MustParse("00000000-0000-0000-0000-0000000e0002")
	demoSup3 = uuid.MustParse("00000000-0000-0000-0000-0000000e0003")
	demoSup4 = uuid.MustParse("00000000-0000-0000-0000-0000000e0004")
	demoSup5 = uuid.MustParse("00000000-0000-0000-0000-0000000e0005")

	demoItem1 = uuid.MustParse("00000000-0000-0000-0000-0000000a0001")
	demoItem2 = uuid.MustParse("00000000-0000-0000-0000-0000000a0002")
	demoItem3 = uuid.MustParse("00000000-0000-0000-0000-0000000a0003")

	demoUser1 = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	demoUser2 = uuid.MustParse("00000000-0000-0000-0000-000000000002")
)

func strPtr(s string) *string { return &s }

// DemoItems returns the fixed 3-item inventory fallback.
func DemoItems() []model.InventoryItem {
	now := time.Now().UTC()
	return []model.InventoryItem{
		{
			ID: demoItem1, Name: `MacBook Pro 14"`, SKU: "APPLE-MBP14-001",
			CategoryID: &demoCat1, SupplierID: &demoSup1,
			Quantity: 25, MinQuantity: 5, Price: decimal.NewFromFloat(1999.99),
			Description: strPtr("Professional laptop for development and design work"),
			CreatedAt:   now, UpdatedAt: now,
			Category: &model.Category{ID: demoCat1, Name: "Electronics"},
			Supplier: &model.Supplier{ID: demoSup1, Name: "Apple Inc."},
		},
		{
			ID: demoItem2, Name: "Office Chair Ergonomic", SKU: "FURN-CHAIR-002",
			CategoryID: &demoCat2, SupplierID: &demoSup2,
			Quantity: 12, MinQuantity: 10, Price: decimal.NewFromFloat(299.99),
			Description: strPtr("Ergonomic office chair with lumbar support"),
			CreatedAt:   now, UpdatedAt: now,
			Category: &model.Category{ID: demoCat2, Name: "Furniture"},
			Supplier: &model.Supplier{ID: demoSup2, Name: "Herman Miller"},
		},
		{
			ID: demoItem3, Name: "Wireless Mouse", SKU: "COMP-MOUSE-003",
			CategoryID: &demoCat3, SupplierID: &demoSup3,
			Quantity: 150, MinQuantity: 20, Price: decimal.NewFromFloat(49.99),
			Description: strPtr("Wireless optical mouse with precision tracking"),
			CreatedAt:   now, UpdatedAt: now,
			Category: &model.Category{ID: demoCat3, Name: "Computer Accessories"},
			Supplier: &model.Supplier{ID: demoSup3, Name: "Logitech"},
		},
	}
}

func DemoCategories() []model.Category {
	return []model.Category{
		{ID: demoCat1, Name: "Electronics", Description: strPtr("Electronic devices and components")},
		{ID: demoCat2, Name: "Furniture", Description: strPtr("Office and workspace furniture")},
		{ID: demoCat3, Name: "Computer Accessories", Description: strPtr("Computer peripherals and accessories")},
		{ID: demoCat4, Name: "Office Equipment", Description: strPtr("General office equipment")},
		{ID: demoCat5, Name: "Appliances", Description: strPtr("Kitchen and office appliances")},
		{ID: demoCat6, Name: "Accessories", Description: strPtr("General accessories and supplies")},
	}
}

func DemoSuppliers() []model.Supplier {
	return []model.Supplier{
		{ID: demoSup1, Name: "Apple Inc.", ContactEmail: strPtr("business@apple.com"), ContactPhone: strPtr("1-800-APL-CARE"), Address: strPtr("Cupertino, CA")},
		{ID: demoSup2, Name: "Herman Miller", ContactEmail: strPtr("sales@hermanmiller.com"), ContactPhone: strPtr("1-800-646-4400"), Address: strPtr("Zeeland, MI")},
		{ID: demoSup3, Name: "Logitech", ContactEmail: strPtr("business@logitech.com"), ContactPhone: strPtr("1-646-454-3200"), Address: strPtr("Newark, CA")},
		{ID: demoSup4, Name: "IKEA", ContactEmail: strPtr("business@ikea.com"), ContactPhone: strPtr("1-888-888-4532"), Address: strPtr("Conshohocken, PA")},
		{ID: demoSup5, Name: "Dell", ContactEmail: strPtr("sales@dell.com"), ContactPhone: strPtr("1-800-915-3355"), Address: strPtr("Round Rock, TX")},
	}
}

func DemoOrders() []model.Order {
	now := time.Now().UTC()
	in3 := now.Add(72 * time.Hour)
	in2 := now.Add(48 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)
	return []model.Order{
		{
			ID:            uuid.MustParse("00000000-0000-0000-0000-0000000b0001"),
			OrderNumber:   "ORD240001",
			CustomerName:  "John Smith",
			CustomerEmail: "john@example.com",
			CustomerPhone: strPtr("+1-555-0123"),
			OrderDate:     now, DeliveryDate: &in3,
			Status:      model.StatusPending,
			TotalAmount: decimal.NewFromFloat(2599.97),
			Notes:       strPtr("Urgent delivery requested"),
			CreatedAt:   now, UpdatedAt: now,
		},
		{
			ID:            uuid.MustParse("00000000-0000-0000-0000-0000000b0002"),
			OrderNumber:   "ORD240002",
			CustomerName:  "Sarah Johnson",
			CustomerEmail: "sarah@company.com",
			CustomerPhone: strPtr("+1-555-0456"),
			OrderDate:     yesterday, DeliveryDate: &in2,
			Status:      model.StatusProcessing,
			TotalAmount: decimal.NewFromFloat(899.99),
			CreatedAt:   yesterday, UpdatedAt: now,
		},
	}
}

func DemoUsers() []model.UserProfile {
	now := time.Now().UTC()
	return []model.UserProfile{
		{
			ID:     uuid.MustParse("00000000-0000-0000-0000-0000000d0001"),
			UserID: demoUser1, Email: "admin@logistx.com",
			Name: "System Administrator", Role: model.RoleAdmin,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID:     uuid.MustParse("00000000-0000-0000-0000-0000000d0002"),
			UserID: demoUser2, Email: "staff@logistx.com",
			Name: "Inventory Staff", Role: model.RoleStaff,
			CreatedAt: now, UpdatedAt: now,
		},
	}
}

func DemoTransactions() []model.InventoryTransaction {
	now := time.Now().UTC()
	items := DemoItems()
	users := DemoUsers()
	return []model.InventoryTransaction{
		{
			ID:     uuid.MustParse("00000000-0000-0000-0000-0000000f0001"),
			ItemID: demoItem1, UserID: demoUser1,
			TransactionType: model.TxCreate,
			QuantityChange:  0, PreviousQuantity: 0, NewQuantity: 25,
			Notes:     "Initial inventory setup",
			CreatedAt: now,
			Item:      &items[0], User: &users[0],
		},
		{
			ID:     uuid.MustParse("00000000-0000-0000-0000-0000000f0002"),
			ItemID: demoItem2, UserID: demoUser2,
			TransactionType: model.TxAdd,
			QuantityChange:  12, PreviousQuantity: 0, NewQuantity: 12,
			Notes:     "Stock received from supplier",
			CreatedAt: now.Add(-24 * time.Hour),
			Item:      &items[1], User: &users[1],
		},
	}
}
