package viewmodels

type Agent struct {
	AgentID    string `csv:"Agent ID"`
	Name       string `csv:"Name"`
	Phone      string `csv:"Phone"`
	Region     string `csv:"Region"`
	Villages   string `csv:"Villages"`
	Areas      string `csv:"Areas"`
	IDProofURL string `csv:"-"`
	Status     string `csv:"Status"`
}
