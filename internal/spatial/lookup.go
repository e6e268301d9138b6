package spatial

// CityCenter is Plaça de Catalunya, the fallback for unresolvable records
var CityCenter = Point{Lat: 41.3851, Lon: 2.1734}

// CityBounds is the box mock points are drawn from
var CityBounds = Bounds{MinLat: 41.32, MaxLat: 41.45, MinLon: 2.09, MaxLon: 2.18}

// districtCoordinates maps district names to an approximate centroid
var districtCoordinates = map[string]Point{
	"Ciutat Vella":        {41.3809, 2.1767},
	"Eixample":            {41.3888, 2.1617},
	"Sants-Montjuïc":      {41.3722, 2.1417},
	"Les Corts":           {41.3851, 2.1303},
	"Sarrià-Sant Gervasi": {41.4014, 2.1350},
	"Gràcia":              {41.4036, 2.1569},
	"Horta-Guinardó":      {41.4184, 2.1635},
	"Nou Barris":          {41.4412, 2.1770},
	"Sant Andreu":         {41.4343, 2.1896},
	"Sant Martí":          {41.4066, 2.1990},
}

// neighborhoodCoordinates maps the 73 barris, spelled as in the open data
// exports, to an approximate centroid
var neighborhoodCoordinates = map[string]Point{
	// Ciutat Vella
	"el Raval":                              {41.3797, 2.1682},
	"el Barri Gòtic":                        {41.3833, 2.1777},
	"la Barceloneta":                        {41.3807, 2.1894},
	"Sant Pere, Santa Caterina i la Ribera": {41.3862, 2.1797},
	// Eixample
	"el Fort Pienc":                   {41.3958, 2.1823},
	"la Sagrada Família":              {41.4036, 2.1744},
	"la Dreta de l'Eixample":          {41.3952, 2.1655},
	"l'Antiga Esquerra de l'Eixample": {41.3880, 2.1550},
	"la Nova Esquerra de l'Eixample":  {41.3827, 2.1490},
	"Sant Antoni":                     {41.3780, 2.1610},
	// Sants-Montjuïc
	"el Poble-sec":               {41.3725, 2.1625},
	"la Marina del Prat Vermell": {41.3550, 2.1400},
	"la Marina de Port":          {41.3595, 2.1370},
	"la Font de la Guatlla":      {41.3708, 2.1450},
	"Hostafrancs":                {41.3755, 2.1430},
	"la Bordeta":                 {41.3690, 2.1360},
	"Sants - Badal":              {41.3760, 2.1290},
	"Sants":                      {41.3758, 2.1360},
	// Les Corts
	"les Corts":                  {41.3855, 2.1320},
	"la Maternitat i Sant Ramon": {41.3810, 2.1200},
	"Pedralbes":                  {41.3900, 2.1130},
	// Sarrià-Sant Gervasi
	"Vallvidrera, el Tibidabo i les Planes": {41.4150, 2.1070},
	"Sarrià":                                {41.4000, 2.1210},
	"les Tres Torres":                       {41.3980, 2.1330},
	"Sant Gervasi - la Bonanova":            {41.4060, 2.1350},
	"Sant Gervasi - Galvany":                {41.3970, 2.1430},
	"el Putxet i el Farró":                  {41.4060, 2.1450},
	// Gràcia
	"Vallcarca i els Penitents":          {41.4140, 2.1420},
	"el Coll":                            {41.4190, 2.1480},
	"la Salut":                           {41.4120, 2.1530},
	"la Vila de Gràcia":                  {41.4020, 2.1570},
	"el Camp d'en Grassot i Gràcia Nova": {41.4050, 2.1660},
	// Horta-Guinardó
	"el Baix Guinardó":         {41.4110, 2.1700},
	"Can Baró":                 {41.4160, 2.1620},
	"el Guinardó":              {41.4190, 2.1750},
	"la Font d'en Fargues":     {41.4260, 2.1650},
	"el Carmel":                {41.4230, 2.1550},
	"la Teixonera":             {41.4220, 2.1460},
	"Sant Genís dels Agudells": {41.4280, 2.1380},
	"Montbau":                  {41.4300, 2.1440},
	"la Vall d'Hebron":         {41.4290, 2.1500},
	"la Clota":                 {41.4310, 2.1530},
	"Horta":                    {41.4330, 2.1600},
	// Nou Barris
	"Vilapicina i la Torre Llobeta": {41.4290, 2.1740},
	"Porta":                         {41.4340, 2.1760},
	"el Turó de la Peira":           {41.4320, 2.1680},
	"Can Peguera":                   {41.4350, 2.1660},
	"la Guineueta":                  {41.4400, 2.1700},
	"Canyelles":                     {41.4430, 2.1640},
	"les Roquetes":                  {41.4480, 2.1740},
	"Verdun":                        {41.4440, 2.1770},
	"la Prosperitat":                {41.4420, 2.1800},
	"la Trinitat Nova":              {41.4490, 2.1830},
	"Torre Baró":                    {41.4530, 2.1810},
	"Ciutat Meridiana":              {41.4600, 2.1750},
	"Vallbona":                      {41.4560, 2.1880},
	// Sant Andreu
	"la Trinitat Vella":        {41.4500, 2.1920},
	"Baró de Viver":            {41.4460, 2.1990},
	"el Bon Pastor":            {41.4370, 2.2040},
	"Sant Andreu":              {41.4350, 2.1900},
	"la Sagrera":               {41.4230, 2.1900},
	"el Congrés i els Indians": {41.4260, 2.1820},
	"Navas":                    {41.4160, 2.1860},
	// Sant Martí
	"el Camp de l'Arpa del Clot":                   {41.4120, 2.1830},
	"el Clot":                                      {41.4090, 2.1880},
	"el Parc i la Llacuna del Poblenou":            {41.3990, 2.1920},
	"la Vila Olímpica del Poblenou":                {41.3900, 2.1970},
	"el Poblenou":                                  {41.4000, 2.2000},
	"Diagonal Mar i el Front Marítim del Poblenou": {41.4070, 2.2130},
	"el Besòs i el Maresme":                        {41.4150, 2.2120},
	"Provençals del Poblenou":                      {41.4120, 2.2040},
	"Sant Martí de Provençals":                     {41.4170, 2.1990},
	"la Verneda i la Pau":                          {41.4230, 2.2020},
}

// NeighborhoodCoordinate looks up a barri by exact name
func NeighborhoodCoordinate(name string) (Point, bool) {
	p, ok := neighborhoodCoordinates[name]
	return p, ok
}

// DistrictCoordinate looks up a district by exact name
func DistrictCoordinate(name string) (Point, bool) {
	p, ok := districtCoordinates[name]
	return p, ok
}
