package draft

// DefaultFactionPool is the stock faction list a draft uses when the creator
// does not narrow it.
var DefaultFactionPool = []string{
	"Arborec",
	"Argent Flight",
	"Barony of Letnev",
	"Clan of Saar",
	"Embers of Muaat",
	"Emirates of Hacan",
	"Empyrean",
	"Federation of Sol",
	"Ghosts of Creuss",
	"L1Z1X Mindnet",
	"Mahact Gene-Sorcerers",
	"Mentak Coalition",
	"Naalu Collective",
	"Naaz-Rokha Alliance",
	"Nekro Virus",
	"Nomad",
	"Sardakk N'orr",
	"Titans of Ul",
	"Universities of Jol-Nar",
	"Vuil'raith Cabal",
	"Winnu",
	"Xxcha Kingdom",
	"Yin Brotherhood",
	"Yssaril Tribes",
}

var DefaultColorPool = []string{
	"red", "blue", "green", "yellow", "purple", "black", "orange", "pink",
}
