package models

// District is one of the ten administrative districts of Barcelona
type District struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Districts lists the districts in official code order
var Districts = []District{
	{ID: 1, Name: "Ciutat Vella"},
	{ID: 2, Name: "Eixample"},
	{ID: 3, Name: "Sants-Montjuïc"},
	{ID: 4, Name: "Les Corts"},
	{ID: 5, Name: "Sarrià-Sant Gervasi"},
	{ID: 6, Name: "Gràcia"},
	{ID: 7, Name: "Horta-Guinardó"},
	{ID: 8, Name: "Nou Barris"},
	{ID: 9, Name: "Sant Andreu"},
	{ID: 10, Name: "Sant Martí"},
}
