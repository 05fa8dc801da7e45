package repository

import (
	"encoding/json"
	"fmt"
	"testing"

	"fleetflow/internal/models"
	"fleetflow/internal/normalize"
)

func TestDeliveryCreateDefaults(t *testing.T) {
	repo := NewDeliveryRepo(openTestDB(t))

	d := models.Delivery{
		DeliveryNumber:  "DEL-0001",
		PickupAddress:   "Warehouse A",
		DeliveryAddress: "12 Main St",
	}
	if err := repo.Create(&d); err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.Status != models.DeliveryPending || d.Priority != models.PriorityNormal || d.PaymentStatus != models.PaymentPending {
		t.Fatalf("defaults not applied: %q %q %q", d.Status, d.Priority, d.PaymentStatus)
	}
}

func TestDeliveryPagination(t *testing.T) {
	repo := NewDeliveryRepo(openTestDB(t))

	for i := 0; i < 25; i++ {
		d := models.Delivery{
			DeliveryNumber:  fmt.Sprintf("DEL-P%03d", i),
			PickupAddress:   "Depot",
			DeliveryAddress: "Somewhere",
		}
		if err := repo.Create(&d); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	for _, tc := range []struct {
		page int
		want int
	}{
		{1, 10},
		{2, 10},
		{3, 5},
	} {
		rows, pagination, err := repo.List(DeliveryFilter{}, Page{Number: tc.page, Limit: 10})
		if err != nil {
			t.Fatalf("list page %d: %v", tc.page, err)
		}
		if len(rows) != tc.want {
			t.Fatalf("page %d: got %d rows, want %d", tc.page, len(rows), tc.want)
		}
		if pagination.Total != 25 || pagination.Pages != 3 {
			t.Fatalf("page %d: pagination = %+v", tc.page, pagination)
		}
	}
}

func TestDeliverySurvivesCustomerDelete(t *testing.T) {
	db := openTestDB(t)
	customers := NewCustomerRepo(db)
	deliveries := NewDeliveryRepo(db)

	customer := models.Customer{Name: "Acme", Phone: "0700000000"}
	if err := customers.Create(&customer); err != nil {
		t.Fatalf("create customer: %v", err)
	}

	d := models.Delivery{
		DeliveryNumber:  "DEL-C001",
		CustomerID:      &customer.ID,
		PickupAddress:   "Depot",
		DeliveryAddress: "Acme HQ",
	}
	if err := deliveries.Create(&d); err != nil {
		t.Fatalf("create delivery: %v", err)
	}

	if err := customers.Delete(customer.ID); err != nil {
		t.Fatalf("delete customer: %v", err)
	}

	// The delivery keeps its dangling reference and still lists; the
	// joined display fields just come back empty.
	row, err := deliveries.GetByID(d.ID)
	if err != nil {
		t.Fatalf("get after customer delete: %v", err)
	}
	if row.CustomerID == nil || *row.CustomerID != customer.ID {
		t.Fatalf("customer_id should be untouched, got %v", row.CustomerID)
	}
	if row.CustomerName != nil {
		t.Fatalf("customer_name should be NULL, got %q", *row.CustomerName)
	}
}

func TestDeliveryPatchClearsForeignKey(t *testing.T) {
	db := openTestDB(t)
	customers := NewCustomerRepo(db)
	deliveries := NewDeliveryRepo(db)

	customer := models.Customer{Name: "Clearable", Phone: "0711111111"}
	if err := customers.Create(&customer); err != nil {
		t.Fatalf("create customer: %v", err)
	}
	d := models.Delivery{
		DeliveryNumber:  "DEL-C002",
		CustomerID:      &customer.ID,
		PickupAddress:   "Depot",
		DeliveryAddress: "There",
	}
	if err := deliveries.Create(&d); err != nil {
		t.Fatalf("create delivery: %v", err)
	}

	// An explicit null in the patch writes NULL to the column.
	row, err := deliveries.Update(d.ID, DeliveryPatch{CustomerID: &normalize.Uint{}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if row.CustomerID != nil {
		t.Fatalf("customer_id should be cleared, got %v", *row.CustomerID)
	}
}

// At the JSON boundary an explicit null key nils the pointer field
// before UnmarshalJSON can run, so it reads as absent. Clearing a
// column goes through the empty string.
func TestDeliveryPatchJSONNullReadsAsAbsent(t *testing.T) {
	db := openTestDB(t)
	customers := NewCustomerRepo(db)
	deliveries := NewDeliveryRepo(db)

	customer := models.Customer{Name: "Sticky", Phone: "0722222222"}
	if err := customers.Create(&customer); err != nil {
		t.Fatalf("create customer: %v", err)
	}
	weight := 12.5
	d := models.Delivery{
		DeliveryNumber:  "DEL-C003",
		CustomerID:      &customer.ID,
		Weight:          &weight,
		PickupAddress:   "Depot",
		DeliveryAddress: "There",
	}
	if err := deliveries.Create(&d); err != nil {
		t.Fatalf("create delivery: %v", err)
	}

	var patch DeliveryPatch
	if err := json.Unmarshal([]byte(`{"customer_id": null, "weight": ""}`), &patch); err != nil {
		t.Fatalf("unmarshal patch: %v", err)
	}
	if patch.CustomerID != nil {
		t.Fatalf("null key should leave the field nil, got %+v", patch.CustomerID)
	}
	if patch.Weight == nil || patch.Weight.Valid {
		t.Fatalf("empty string should carry an explicit null, got %+v", patch.Weight)
	}

	row, err := deliveries.Update(d.ID, patch)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if row.CustomerID == nil || *row.CustomerID != customer.ID {
		t.Fatalf("customer_id should be untouched, got %v", row.CustomerID)
	}
	if row.Weight != nil {
		t.Fatalf("weight should be cleared, got %v", *row.Weight)
	}
}
