package records

import (
	"strconv"

	"bvdu-bank/internal/models"
)

const priceFields = 8

// EncodePrice writes assetId|assetName|price|vol|market|lastUpdate|openHour|closeHour
func EncodePrice(p *models.PriceRecord) string {
	return join(
		p.AssetID,
		p.Name,
		p.Price.StringFixed(models.PricePlaces),
		p.Volatility.StringFixed(models.RatePlaces),
		string(p.Market),
		formatTime(p.LastUpdate),
		strconv.Itoa(p.OpenHour),
		strconv.Itoa(p.CloseHour),
	)
}

func DecodePrice(line string) (*models.PriceRecord, error) {
	f, err := fields(line, priceFields)
	if err != nil {
		return nil, err
	}

	p := &models.PriceRecord{AssetID: f[0], Name: f[1], Market: models.ParseMarket(f[4])}
	if p.Price, err = parseDecimal("price", f[2], models.PricePlaces); err != nil {
		return nil, err
	}
	if p.Volatility, err = parseDecimal("volatility", f[3], models.RatePlaces); err != nil {
		return nil, err
	}
	if p.LastUpdate, err = parseTime("last update", f[5]); err != nil {
		return nil, err
	}
	if p.OpenHour, err = parseInt("open hour", f[6]); err != nil {
		return nil, err
	}
	if p.CloseHour, err = parseInt("close hour", f[7]); err != nil {
		return nil, err
	}
	return p, nil
}
