// Package refdata 前端下拉框用的尼日利亚州/城市参考数据
package refdata

type Locations struct {
	States []string            `json:"states"`
	Cities map[string][]string `json:"cities"`
}

var nigeria = Locations{
	States: []string{
		"Abia", "Adamawa", "Akwa Ibom", "Anambra", "Bauchi", "Bayelsa", "Benue", "Borno",
		"Cross River", "Delta", "Ebonyi", "Edo", "Ekiti", "Enugu", "Gombe", "Imo",
		"Jigawa", "Kaduna", "Kano", "Katsina", "Kebbi", "Kogi", "Kwara", "Lagos",
		"Nasarawa", "Niger", "Ogun", "Ondo", "Osun", "Oyo", "Plateau", "Rivers",
		"Sokoto", "Taraba", "Yobe", "Zamfara", "Federal Capital Territory",
	},
	Cities: map[string][]string{
		"Lagos":  {"Lekki", "Victoria Island", "Ikeja", "Surulere", "Yaba", "Apapa", "Agege", "Maryland"},
		"Abuja":  {"Wuse", "Garki", "Maitama", "Asokoro", "Gwarinpa", "Kubwa", "Lugbe"},
		"Rivers": {"Port Harcourt", "Obio-Akpor", "Eleme", "Oyigbo", "Rumuokoro"},
		"Edo":    {"Benin City", "GRA", "Ugbowo", "Ekheuan", "Ugbor", "Siluko"},
		"Oyo":    {"Ibadan", "Bodija", "UI Area", "Mokola", "Agodi", "Challenge"},
	},
}

func Nigeria() Locations { return nigeria }
