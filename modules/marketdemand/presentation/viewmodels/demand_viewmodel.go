package viewmodels

type MarketDemand struct {
	ID            string `csv:"ID"`
	RequesterName string `csv:"Requester"`
	BusinessName  string `csv:"Business"`
	City          string `csv:"City"`
	Products      string `csv:"Products"`
	TotalQuantity int    `csv:"Total quantity"`
	Status        string `csv:"Status"`
}
