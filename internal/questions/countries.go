package questions

import (
	"geoquiz/internal/domain"
)

// Countries is the embedded trivia dataset. Difficulty runs 1 (easy)
// to 3 (hard), roughly by how recognizable the flag is.
var Countries = []domain.Country{
	// Europe
	{Name: "France", Region: "Europe", Difficulty: 1, FlagFile: "fr.png"},
	{Name: "Germany", Region: "Europe", Difficulty: 1, FlagFile: "de.png"},
	{Name: "Italy", Region: "Europe", Difficulty: 1, FlagFile: "it.png"},
	{Name: "Spain", Region: "Europe", Difficulty: 1, FlagFile: "es.png"},
	{Name: "United Kingdom", Region: "Europe", Difficulty: 1, FlagFile: "gb.png"},
	{Name: "Greece", Region: "Europe", Difficulty: 1, FlagFile: "gr.png"},
	{Name: "Sweden", Region: "Europe", Difficulty: 1, FlagFile: "se.png"},
	{Name: "Norway", Region: "Europe", Difficulty: 2, FlagFile: "no.png"},
	{Name: "Portugal", Region: "Europe", Difficulty: 2, FlagFile: "pt.png"},
	{Name: "Poland", Region: "Europe", Difficulty: 2, FlagFile: "pl.png"},
	{Name: "Austria", Region: "Europe", Difficulty: 2, FlagFile: "at.png"},
	{Name: "Croatia", Region: "Europe", Difficulty: 2, FlagFile: "hr.png"},
	{Name: "Estonia", Region: "Europe", Difficulty: 3, FlagFile: "ee.png"},
	{Name: "Slovenia", Region: "Europe", Difficulty: 3, FlagFile: "si.png"},
	{Name: "Moldova", Region: "Europe", Difficulty: 3, FlagFile: "md.png"},
	{Name: "North Macedonia", Region: "Europe", Difficulty: 3, FlagFile: "mk.png"},

	// Americas
	{Name: "United States", Region: "Americas", Difficulty: 1, FlagFile: "us.png"},
	{Name: "Canada", Region: "Americas", Difficulty: 1, FlagFile: "ca.png"},
	{Name: "Brazil", Region: "Americas", Difficulty: 1, FlagFile: "br.png"},
	{Name: "Mexico", Region: "Americas", Difficulty: 1, FlagFile: "mx.png"},
	{Name: "Argentina", Region: "Americas", Difficulty: 1, FlagFile: "ar.png"},
	{Name: "Chile", Region: "Americas", Difficulty: 2, FlagFile: "cl.png"},
	{Name: "Colombia", Region: "Americas", Difficulty: 2, FlagFile: "co.png"},
	{Name: "Peru", Region: "Americas", Difficulty: 2, FlagFile: "pe.png"},
	{Name: "Cuba", Region: "Americas", Difficulty: 2, FlagFile: "cu.png"},
	{Name: "Uruguay", Region: "Americas", Difficulty: 3, FlagFile: "uy.png"},
	{Name: "Paraguay", Region: "Americas", Difficulty: 3, FlagFile: "py.png"},
	{Name: "Suriname", Region: "Americas", Difficulty: 3, FlagFile: "sr.png"},
	{Name: "Belize", Region: "Americas", Difficulty: 3, FlagFile: "bz.png"},

	// Asia
	{Name: "Japan", Region: "Asia", Difficulty: 1, FlagFile: "jp.png"},
	{Name: "China", Region: "Asia", Difficulty: 1, FlagFile: "cn.png"},
	{Name: "India", Region: "Asia", Difficulty: 1, FlagFile: "in.png"},
	{Name: "South Korea", Region: "Asia", Difficulty: 1, FlagFile: "kr.png"},
	{Name: "Turkey", Region: "Asia", Difficulty: 1, FlagFile: "tr.png"},
	{Name: "Thailand", Region: "Asia", Difficulty: 2, FlagFile: "th.png"},
	{Name: "Vietnam", Region: "Asia", Difficulty: 2, FlagFile: "vn.png"},
	{Name: "Indonesia", Region: "Asia", Difficulty: 2, FlagFile: "id.png"},
	{Name: "Israel", Region: "Asia", Difficulty: 2, FlagFile: "il.png"},
	{Name: "Nepal", Region: "Asia", Difficulty: 2, FlagFile: "np.png"},
	{Name: "Kyrgyzstan", Region: "Asia", Difficulty: 3, FlagFile: "kg.png"},
	{Name: "Bhutan", Region: "Asia", Difficulty: 3, FlagFile: "bt.png"},
	{Name: "Laos", Region: "Asia", Difficulty: 3, FlagFile: "la.png"},
	{Name: "Turkmenistan", Region: "Asia", Difficulty: 3, FlagFile: "tm.png"},

	// Africa
	{Name: "Egypt", Region: "Africa", Difficulty: 1, FlagFile: "eg.png"},
	{Name: "South Africa", Region: "Africa", Difficulty: 1, FlagFile: "za.png"},
	{Name: "Kenya", Region: "Africa", Difficulty: 2, FlagFile: "ke.png"},
	{Name: "Nigeria", Region: "Africa", Difficulty: 2, FlagFile: "ng.png"},
	{Name: "Morocco", Region: "Africa", Difficulty: 2, FlagFile: "ma.png"},
	{Name: "Ghana", Region: "Africa", Difficulty: 2, FlagFile: "gh.png"},
	{Name: "Senegal", Region: "Africa", Difficulty: 3, FlagFile: "sn.png"},
	{Name: "Namibia", Region: "Africa", Difficulty: 3, FlagFile: "na.png"},
	{Name: "Burkina Faso", Region: "Africa", Difficulty: 3, FlagFile: "bf.png"},
	{Name: "Eswatini", Region: "Africa", Difficulty: 3, FlagFile: "sz.png"},

	// Oceania
	{Name: "Australia", Region: "Oceania", Difficulty: 1, FlagFile: "au.png"},
	{Name: "New Zealand", Region: "Oceania", Difficulty: 1, FlagFile: "nz.png"},
	{Name: "Fiji", Region: "Oceania", Difficulty: 2, FlagFile: "fj.png"},
	{Name: "Papua New Guinea", Region: "Oceania", Difficulty: 3, FlagFile: "pg.png"},
	{Name: "Vanuatu", Region: "Oceania", Difficulty: 3, FlagFile: "vu.png"},
	{Name: "Kiribati", Region: "Oceania", Difficulty: 3, FlagFile: "ki.png"},
}
