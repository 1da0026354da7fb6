package league

// TeamRoster is a club and its squad names in seeding order.
type TeamRoster struct {
	Name    string
	Players []string
}

// Teams is the fixed league the seeder inserts.
var Teams = []TeamRoster{
	{"Breidablik", []string{
		"Jóhann Freyrsson", "Einar Ævarsson", "Valdimar Kristjánsson", "Árni Jónsson",
		"Guðmundur Þórsson", "Ólafur Sigurðsson", "Björn Einarsson", "Magnús Jónsson",
		"Stefán Guðmundsson", "Hrafn Ólafsson", "Gunnar Björnsson", "Þorsteinn Magnússon",
	}},
	{"Fjölnir", []string{
		"Níels Helgason", "Dagfinnur Þórsson", "Ívar Gunnarsson", "Ragnar Stefánsson",
		"Eiríkur Hrafnsson", "Baldur Gunnarsson", "Vilhjálmur Þorsteinsson", "Sigurður Ólafsson",
		"Geir Magnússon", "Hjalti Björnsson", "Ásgeir Einarsson", "Jón Guðmundsson",
	}},
	{"Fylkir", []string{
		"Sævar Hrafnsson", "Fannar Helgason", "Ísak Þórsson", "Óskar Dagfinnursson",
		"Kristján Ívarsson", "Hjörleifur Ragnarsson", "Þórir Eiríkursson", "Baldvin Baldursson",
		"Gísli Vilhjálmursson", "Haukur Sigurðursson", "Snorri Geirsson", "Árni Hjaltisson",
	}},
	{"Hamar", []string{
		"Gunnar Ásgeirsson", "Jón Jónsson", "Ólafur Sævarsson", "Björn Fannarsson",
		"Magnús Ísaksson", "Stefán Óskarsson", "Hrafn Kristjánsson", "Guðmundur Hjörleifursson",
		"Þorsteinn Þórirsson", "Einar Baldvinsson", "Árni Gíslisson", "Valdimar Haukursson",
	}},
	{"Haukar", []string{
		"Snorri Haukarsson", "Árni Haukarsson", "Gunnar Haukarsson", "Jón Haukarsson",
		"Ólafur Haukarsson", "Björn Haukarsson", "Magnús Haukarsson", "Stefán Haukarsson",
		"Hrafn Haukarsson", "Guðmundur Haukarsson", "Þorsteinn Haukarsson", "Einar Haukarsson",
	}},
	{"Hottur", []string{
		"Valdimar Valdimarsson", "Jóhann Jóhannsson", "Einar Einarsson", "Níels Níelsson",
		"Dagfinnur Dagfinnursson", "Sævar Sævarsson", "Fannar Fannarsson", "Ísak Ísaksson",
		"Óskar Óskarsson", "Kristján Kristjánsson", "Hjörleifur Hjörleifursson", "Þórir Þórirsson",
	}},
	{"KV", []string{
		"Baldvin KVsson", "Gísli KVsson", "Haukur KVsson", "Snorri KVsson",
		"Árni KVsson", "Gunnar KVsson", "Jón KVsson", "Ólafur KVsson",
		"Björn KVsson", "Magnús KVsson", "Stefán KVsson", "Hrafn KVsson",
	}},
	{"Selfoss", []string{
		"Guðmundur Selfossson", "Þorsteinn Selfossson", "Einar Selfossson", "Valdimar Selfossson",
		"Jóhann Selfossson", "Níels Selfossson", "Dagfinnur Selfossson", "Sævar Selfossson",
		"Fannar Selfossson", "Ísak Selfossson", "Óskar Selfossson", "Kristján Selfossson",
	}},
	{"Sindri", []string{
		"Hjörleifur Sindrisson", "Þórir Sindrisson", "Baldvin Sindrisson", "Gísli Sindrisson",
		"Haukur Sindrisson", "Snorri Sindrisson", "Árni Sindrisson", "Gunnar Sindrisson",
		"Jón Sindrisson", "Ólafur Sindrisson", "Björn Sindrisson", "Magnús Sindrisson",
	}},
	{"Skallagrimur", []string{
		"Stefán Skallagrimsson", "Hrafn Skallagrimsson", "Guðmundur Skallagrimsson", "Þorsteinn Skallagrimsson",
		"Einar Skallagrimsson", "Valdimar Skallagrimsson", "Jóhann Skallagrimsson", "Níels Skallagrimsson",
		"Dagfinnur Skallagrimsson", "Sævar Skallagrimsson", "Fannar Skallagrimsson", "Ísak Skallagrimsson",
	}},
	{"Snæfell", []string{
		"Óskar Snæfellsson", "Kristján Snæfellsson", "Hjörleifur Snæfellsson", "Þórir Snæfellsson",
		"Baldvin Snæfellsson", "Gísli Snæfellsson", "Haukur Snæfellsson", "Snorri Snæfellsson",
		"Árni Snæfellsson", "Gunnar Snæfellsson", "Jón Snæfellsson", "Ólafur Snæfellsson",
	}},
	{"Þorak", []string{
		"Björn Þoraksson", "Magnús Þoraksson", "Stefán Þoraksson", "Hrafn Þoraksson",
		"Guðmundur Þoraksson", "Þorsteinn Þoraksson", "Einar Þoraksson", "Valdimar Þoraksson",
		"Jóhann Þoraksson", "Níels Þoraksson", "Dagfinnur Þoraksson", "Sævar Þoraksson",
	}},
}

// TeamNames returns the club names in seeding order.
func TeamNames() []string {
	out := make([]string, 0, len(Teams))
	for _, t := range Teams {
		out = append(out, t.Name)
	}
	return out
}
