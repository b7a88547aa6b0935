// Package elements holds the static periodic table.
package elements

import "github.com/verte-zerg/elemquiz/internal/model"

const ancient = 0

func el(number int, symbol, name string, valence, year int) model.Element {
	discovered := model.DiscoveredIn(year)
	if year == ancient {
		discovered = model.AncientDiscovery()
	}
	return model.Element{
		Number:     number,
		Symbol:     symbol,
		Name:       name,
		Valence:    valence,
		Discovered: discovered,
	}
}

var table = [...]model.Element{
	el(1, "H", "Hydrogen", 1, 1766),
	el(2, "He", "Helium", 2, 1868),
	el(3, "Li", "Lithium", 1, 1817),
	el(4, "Be", "Beryllium", 2, 1798),
	el(5, "B", "Boron", 3, 1808),
	el(6, "C", "Carbon", 4, ancient),
	el(7, "N", "Nitrogen", 5, 1772),
	el(8, "O", "Oxygen", 6, 1774),
	el(9, "F", "Fluorine", 7, 1886),
	el(10, "Ne", "Neon", 8, 1898),
	el(11, "Na", "Sodium", 1, 1807),
	el(12, "Mg", "Magnesium", 2, 1755),
	el(13, "Al", "Aluminum", 3, 1825),
	el(14, "Si", "Silicon", 4, 1824),
	el(15, "P", "Phosphorus", 5, 1669),
	el(16, "S", "Sulfur", 6, ancient),
	el(17, "Cl", "Chlorine", 7, 1774),
	el(18, "Ar", "Argon", 8, 1894),
	el(19, "K", "Potassium", 1, 1807),
	el(20, "Ca", "Calcium", 2, 1808),
	el(21, "Sc", "Scandium", 2, 1879),
	el(22, "Ti", "Titanium", 2, 1791),
	el(23, "V", "Vanadium", 2, 1801),
	el(24, "Cr", "Chromium", 1, 1797),
	el(25, "Mn", "Manganese", 2, 1774),
	el(26, "Fe", "Iron", 2, ancient),
	el(27, "Co", "Cobalt", 2, 1735),
	el(28, "Ni", "Nickel", 2, 1751),
	el(29, "Cu", "Copper", 1, ancient),
	el(30, "Zn", "Zinc", 2, ancient),
	el(31, "Ga", "Gallium", 3, 1875),
	el(32, "Ge", "Germanium", 4, 1886),
	el(33, "As", "Arsenic", 5, ancient),
	el(34, "Se", "Selenium", 6, 1817),
	el(35, "Br", "Bromine", 7, 1826),
	el(36, "Kr", "Krypton", 8, 1898),
	el(37, "Rb", "Rubidium", 1, 1861),
	el(38, "Sr", "Strontium", 2, 1790),
	el(39, "Y", "Yttrium", 2, 1794),
	el(40, "Zr", "Zirconium", 2, 1789),
	el(41, "Nb", "Niobium", 1, 1801),
	el(42, "Mo", "Molybdenum", 1, 1781),
	el(43, "Tc", "Technetium", 2, 1937),
	el(44, "Ru", "Ruthenium", 1, 1844),
	el(45, "Rh", "Rhodium", 1, 1803),
	el(46, "Pd", "Palladium", 0, 1803),
	el(47, "Ag", "Silver", 1, ancient),
	el(48, "Cd", "Cadmium", 2, 1817),
	el(49, "In", "Indium", 3, 1863),
	el(50, "Sn", "Tin", 4, ancient),
	el(51, "Sb", "Antimony", 5, ancient),
	el(52, "Te", "Tellurium", 6, 1782),
	el(53, "I", "Iodine", 7, 1811),
	el(54, "Xe", "Xenon", 8, 1898),
	el(55, "Cs", "Cesium", 1, 1860),
	el(56, "Ba", "Barium", 2, 1808),
	el(57, "La", "Lanthanum", 2, 1839),
	el(58, "Ce", "Cerium", 2, 1803),
	el(59, "Pr", "Praseodymium", 2, 1885),
	el(60, "Nd", "Neodymium", 2, 1885),
	el(61, "Pm", "Promethium", 2, 1945),
	el(62, "Sm", "Samarium", 2, 1879),
	el(63, "Eu", "Europium", 2, 1901),
	el(64, "Gd", "Gadolinium", 2, 1880),
	el(65, "Tb", "Terbium", 2, 1843),
	el(66, "Dy", "Dysprosium", 2, 1886),
	el(67, "Ho", "Holmium", 2, 1878),
	el(68, "Er", "Erbium", 2, 1843),
	el(69, "Tm", "Thulium", 2, 1879),
	el(70, "Yb", "Ytterbium", 2, 1878),
	el(71, "Lu", "Lutetium", 2, 1907),
	el(72, "Hf", "Hafnium", 2, 1923),
	el(73, "Ta", "Tantalum", 2, 1802),
	el(74, "W", "Tungsten", 2, 1783),
	el(75, "Re", "Rhenium", 2, 1925),
	el(76, "Os", "Osmium", 2, 1803),
	el(77, "Ir", "Iridium", 2, 1803),
	el(78, "Pt", "Platinum", 1, 1735),
	el(79, "Au", "Gold", 1, ancient),
	el(80, "Hg", "Mercury", 2, ancient),
	el(81, "Tl", "Thallium", 3, 1861),
	el(82, "Pb", "Lead", 4, ancient),
	el(83, "Bi", "Bismuth", 5, ancient),
	el(84, "Po", "Polonium", 6, 1898),
	el(85, "At", "Astatine", 7, 1940),
	el(86, "Rn", "Radon", 8, 1900),
	el(87, "Fr", "Francium", 1, 1939),
	el(88, "Ra", "Radium", 2, 1898),
	el(89, "Ac", "Actinium", 2, 1899),
	el(90, "Th", "Thorium", 2, 1829),
	el(91, "Pa", "Protactinium", 2, 1913),
	el(92, "U", "Uranium", 2, 1789),
	el(93, "Np", "Neptunium", 2, 1940),
	el(94, "Pu", "Plutonium", 2, 1940),
	el(95, "Am", "Americium", 2, 1944),
	el(96, "Cm", "Curium", 2, 1944),
	el(97, "Bk", "Berkelium", 2, 1949),
	el(98, "Cf", "Californium", 2, 1950),
	el(99, "Es", "Einsteinium", 2, 1952),
	el(100, "Fm", "Fermium", 2, 1952),
	el(101, "Md", "Mendelevium", 2, 1955),
	el(102, "No", "Nobelium", 2, 1958),
	el(103, "Lr", "Lawrencium", 3, 1961),
	el(104, "Rf", "Rutherfordium", 2, 1969),
	el(105, "Db", "Dubnium", 2, 1970),
	el(106, "Sg", "Seaborgium", 2, 1974),
	el(107, "Bh", "Bohrium", 2, 1981),
	el(108, "Hs", "Hassium", 2, 1984),
	el(109, "Mt", "Meitnerium", 2, 1982),
	el(110, "Ds", "Darmstadtium", 2, 1994),
	el(111, "Rg", "Roentgenium", 2, 1994),
	el(112, "Cn", "Copernicium", 2, 1996),
	el(113, "Nh", "Nihonium", 3, 2003),
	el(114, "Fl", "Flerovium", 4, 1999),
	el(115, "Mc", "Moscovium", 5, 2003),
	el(116, "Lv", "Livermorium", 6, 2000),
	el(117, "Ts", "Tennessine", 7, 2010),
	el(118, "Og", "Oganesson", 8, 2006),
}
