package billing

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/bill-automation-api/internal/application/dto"
	"github.com/jhoicas/bill-automation-api/internal/domain/entity"
)

// DraftFromRequest convierte el body HTTP en el borrador de dominio.
// El lugar de suministro se normaliza a mayúscula inicial ("uttar pradesh" -> "Uttar Pradesh").
func DraftFromRequest(in dto.GenerateBillRequest) entity.BillDraft {
	items := make([]entity.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.LineItem{
			LRDate:              strings.TrimSpace(it.LRDate),
			LRNo:                strings.TrimSpace(it.LRNo),
			VehicleNo:           strings.ToUpper(strings.TrimSpace(it.VehicleNo)),
			FromLocation:        strings.TrimSpace(it.FromLocation),
			ToLocation:          strings.TrimSpace(it.ToLocation),
			FreightCharge:       it.FreightCharge,
			DocumentCharges:     it.DocumentCharges,
			LoadingCharges:      it.LoadingCharges,
			DoorDeliveryCharges: it.DoorDeliveryCharges,
			HaltingCharges:      it.HaltingCharges,
			OtherCharges:        it.OtherCharges,
		})
	}
	return entity.BillDraft{
		BillNo:        strings.TrimSpace(in.BillNo),
		BillDate:      strings.TrimSpace(in.BillDate),
		PlaceOfSupply: normalizePlace(in.PlaceOfSupply),
		Remarks:       strings.TrimSpace(in.Remarks),
		CustomerID:    strings.TrimSpace(in.Customer.ID),
		Customer: entity.CustomerSnapshot{
			Name:          strings.TrimSpace(in.Customer.Name),
			GSTIN:         strings.ToUpper(strings.TrimSpace(in.Customer.GSTIN)),
			Address:       strings.TrimSpace(in.Customer.Address),
			ContactPerson: strings.TrimSpace(in.Customer.ContactPerson),
			ContactNo:     strings.TrimSpace(in.Customer.ContactNo),
		},
		Items:   items,
		TaxMode: entity.TaxMode(in.GSTType),
	}
}

func normalizePlace(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	// Caser guarda estado: uno por llamada.
	return cases.Title(language.English).String(s)
}
