package directory

import (
	"context"
	"errors"

	salestypes "github.com/cornerstore/cornerstore-api/internal/domains/sales/application/types"
	salesports "github.com/cornerstore/cornerstore-api/internal/domains/sales/ports"
	staffports "github.com/cornerstore/cornerstore-api/internal/domains/staff/ports"
)

var _ salesports.CashierDirectory = (*StaffDirectory)(nil)

// StaffDirectory resolves cashier summaries through the staff service.
type StaffDirectory struct {
	staff staffports.Service
}

func NewStaffDirectory(staff staffports.Service) *StaffDirectory {
	return &StaffDirectory{staff: staff}
}

func (d *StaffDirectory) GetCashier(ctx context.Context, id int64) (*salestypes.CashierSummary, error) {
	cashier, err := d.staff.GetCashierByID(ctx, id)
	if err != nil {
		if errors.Is(err, staffports.ErrNotFound) {
			return nil, salesports.ErrCashierNotFound
		}
		return nil, err
	}
	return &salestypes.CashierSummary{
		ID:        cashier.ID,
		FirstName: cashier.FirstName,
		LastName:  cashier.LastName,
	}, nil
}
