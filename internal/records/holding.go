package records

import (
	"strconv"

	"bvdu-bank/internal/models"
)

const holdingFields = 6

// EncodeHolding writes accNo|assetId|assetName|qty|avgPrice|market
func EncodeHolding(h *models.Holding) string {
	return join(
		strconv.Itoa(h.AccountNumber),
		h.AssetID,
		h.Name,
		h.Quantity.StringFixed(models.QuantityPlaces),
		h.AvgPrice.StringFixed(models.PricePlaces),
		string(h.Market),
	)
}

func DecodeHolding(line string) (*models.Holding, error) {
	f, err := fields(line, holdingFields)
	if err != nil {
		return nil, err
	}

	h := &models.Holding{AssetID: f[1], Name: f[2], Market: models.ParseMarket(f[5])}
	if h.AccountNumber, err = parseInt("account number", f[0]); err != nil {
		return nil, err
	}
	if h.Quantity, err = parseDecimal("quantity", f[3], models.QuantityPlaces); err != nil {
		return nil, err
	}
	if h.AvgPrice, err = parseDecimal("average price", f[4], models.PricePlaces); err != nil {
		return nil, err
	}
	return h, nil
}
