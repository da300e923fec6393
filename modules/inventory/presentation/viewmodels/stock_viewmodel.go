package viewmodels

type InventoryRecord struct {
	ID          string `csv:"ID"`
	ProductName string `csv:"Product"`
	SKU         string `csv:"SKU"`
	Category    string `csv:"Category"`
	BatchNumber string `csv:"Batch"`
	Quantity    int    `csv:"Quantity"`
	UnitPrice   string `csv:"Unit price"`
	StockValue  string `csv:"Stock value"`
	ExpiryDate  string `csv:"Expiry"`
	LowStock    bool   `csv:"Low stock"`
	ReportURL   string `csv:"-"`
	Status      string `csv:"Status"`
}
