package viewmodels

type BusinessInfo struct {
	ID           string `csv:"ID"`
	BusinessName string `csv:"Business"`
	OwnerName    string `csv:"Owner"`
	GSTNumber    string `csv:"GST number"`
	City         string `csv:"City"`
	Phone        string `csv:"Phone"`
	LogoURL      string `csv:"-"`
	LicenseURL   string `csv:"License document"`
	Status       string `csv:"Status"`
}

type BrandInfo struct {
	ID        string   `csv:"ID"`
	BrandName string   `csv:"Brand"`
	Tagline   string   `csv:"Tagline"`
	Website   string   `csv:"Website"`
	AssetURLs []string `csv:"-"`
	Assets    int      `csv:"Assets"`
	Status    string   `csv:"Status"`
}

type BusinessContact struct {
	ID       string `csv:"ID"`
	Name     string `csv:"Name"`
	Email    string `csv:"Email"`
	Phone    string `csv:"Phone"`
	Subject  string `csv:"Subject"`
	Received string `csv:"Received"`
	Status   string `csv:"Status"`
}
