package viewmodels

type Doctor struct {
	ID             string `csv:"ID"`
	Name           string `csv:"Name"`
	HospitalClinic string `csv:"Hospital / Clinic"`
	Specialization string `csv:"Specialization"`
	Phone          string `csv:"Phone"`
	City           string `csv:"City"`
	Experience     string `csv:"Experience"`
	Designations   string `csv:"Designations"`
	PhotoURL       string `csv:"-"`
	Status         string `csv:"Status"`
}
