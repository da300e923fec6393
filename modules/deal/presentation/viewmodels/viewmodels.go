package viewmodels

type Deal struct {
	ID              string `csv:"ID"`
	Title           string `csv:"Title"`
	Discount        string `csv:"Discount"`
	StartDate       string `csv:"Starts"`
	EndDate         string `csv:"Ends"`
	Applicabilities string `csv:"Applies to"`
	Conditions      int    `csv:"Conditions"`
	BannerURL       string `csv:"-"`
	Status          string `csv:"Status"`
}

type Coupon struct {
	ID            string `csv:"ID"`
	Code          string `csv:"Code"`
	Discount      string `csv:"Discount"`
	MinOrderValue string `csv:"Min order"`
	UsageLimit    string `csv:"Usage limit"`
	StartDate     string `csv:"Starts"`
	EndDate       string `csv:"Ends"`
	Status        string `csv:"Status"`
}
