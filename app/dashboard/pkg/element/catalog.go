package element

// catalog 元素表，按原子序数排列
var catalog = []Element{
	{1, "H", "Hydrogen", "氢", 1.008, 1, 1, Nonmetal, None},
	{2, "He", "Helium", "氦", 4.003, 1, 18, NobleGas, None},
	{3, "Li", "Lithium", "锂", 6.941, 2, 1, Light, Light},
	{4, "Be", "Beryllium", "铍", 9.012, 2, 2, Light, Light},
	{5, "B", "Boron", "硼", 10.81, 2, 13, Metalloid, None},
	{6, "C", "Carbon", "碳", 12.01, 2, 14, Nonmetal, None},
	{7, "N", "Nitrogen", "氮", 14.01, 2, 15, Nonmetal, None},
	{8, "O", "Oxygen", "氧", 16.00, 2, 16, Nonmetal, None},
	{9, "F", "Fluorine", "氟", 19.00, 2, 17, Halogen, None},
	{10, "Ne", "Neon", "氖", 20.18, 2, 18, NobleGas, None},
	{11, "Na", "Sodium", "钠", 22.99, 3, 1, Light, Light},
	{12, "Mg", "Magnesium", "镁", 24.31, 3, 2, Light, Light},
	{13, "Al", "Aluminium", "铝", 26.98, 3, 13, Base, Base},
	{14, "Si", "Silicon", "硅", 28.09, 3, 14, Metalloid, None},
	{15, "P", "Phosphorus", "磷", 30.97, 3, 15, Nonmetal, None},
	{16, "S", "Sulfur", "硫", 32.07, 3, 16, Nonmetal, None},
	{17, "Cl", "Chlorine", "氯", 35.45, 3, 17, Halogen, None},
	{18, "Ar", "Argon", "氩", 39.95, 3, 18, NobleGas, None},
	{19, "K", "Potassium", "钾", 39.10, 4, 1, Light, Light},
	{20, "Ca", "Calcium", "钙", 40.08, 4, 2, Light, Light},
	{21, "Sc", "Scandium", "钪", 44.96, 4, 3, RareEarth, RareEarth},
	{22, "Ti", "Titanium", "钛", 47.87, 4, 4, Rare, Rare},
	{23, "V", "Vanadium", "钒", 50.94, 4, 5, Rare, Rare},
	{24, "Cr", "Chromium", "铬", 52.00, 4, 6, Ferrous, Ferrous},
	{25, "Mn", "Manganese", "锰", 54.94, 4, 7, Ferrous, Ferrous},
	{26, "Fe", "Iron", "铁", 55.85, 4, 8, Ferrous, Ferrous},
	{27, "Co", "Cobalt", "钴", 58.93, 4, 9, Base, Base},
	{28, "Ni", "Nickel", "镍", 58.69, 4, 10, Base, Base},
	{29, "Cu", "Copper", "铜", 63.55, 4, 11, Base, Base},
	{30, "Zn", "Zinc", "锌", 65.38, 4, 12, Base, Base},
	{31, "Ga", "Gallium", "镓", 69.72, 4, 13, Scattered, Scattered},
	{32, "Ge", "Germanium", "锗", 72.63, 4, 14, Scattered, Scattered},
	{33, "As", "Arsenic", "砷", 74.92, 4, 15, Metalloid, None},
	{34, "Se", "Selenium", "硒", 78.97, 4, 16, Scattered, Scattered},
	{35, "Br", "Bromine", "溴", 79.90, 4, 17, Halogen, None},
	{36, "Kr", "Krypton", "氪", 83.80, 4, 18, NobleGas, None},
	{37, "Rb", "Rubidium", "铷", 85.47, 5, 1, Light, Light},
	{38, "Sr", "Strontium", "锶", 87.62, 5, 2, Light, Light},
	{39, "Y", "Yttrium", "钇", 88.91, 5, 3, RareEarth, RareEarth},
	{40, "Zr", "Zirconium", "锆", 91.22, 5, 4, Rare, Rare},
	{41, "Nb", "Niobium", "铌", 92.91, 5, 5, Rare, Rare},
	{42, "Mo", "Molybdenum", "钼", 95.95, 5, 6, Rare, Rare},
	{43, "Tc", "Technetium", "锝", 98, 5, 7, Unknown, None},
	{44, "Ru", "Ruthenium", "钌", 101.1, 5, 8, Precious, Precious},
	{45, "Rh", "Rhodium", "铑", 102.9, 5, 9, Precious, Precious},
	{46, "Pd", "Palladium", "钯", 106.4, 5, 10, Precious, Precious},
	{47, "Ag", "Silver", "银", 107.9, 5, 11, Precious, Precious},
	{48, "Cd", "Cadmium", "镉", 112.4, 5, 12, Scattered, Scattered},
	{49, "In", "Indium", "铟", 114.8, 5, 13, Scattered, Scattered},
	{50, "Sn", "Tin", "锡", 118.7, 5, 14, Base, Base},
	{51, "Sb", "Antimony", "锑", 121.8, 5, 15, Scattered, Scattered},
	{52, "Te", "Tellurium", "碲", 127.6, 5, 16, Scattered, Scattered},
	{53, "I", "Iodine", "碘", 126.9, 5, 17, Halogen, None},
	{54, "Xe", "Xenon", "氙", 131.3, 5, 18, NobleGas, None},
	{55, "Cs", "Cesium", "铯", 132.9, 6, 1, Light, Light},
	{56, "Ba", "Barium", "钡", 137.3, 6, 2, Light, Light},
	{57, "La", "Lanthanum", "镧", 138.9, 9, 3, RareEarth, RareEarth},
	{58, "Ce", "Cerium", "铈", 140.1, 9, 4, RareEarth, RareEarth},
	{59, "Pr", "Praseodymium", "镨", 140.9, 9, 5, RareEarth, RareEarth},
	{60, "Nd", "Neodymium", "钕", 144.2, 9, 6, RareEarth, RareEarth},
	{61, "Pm", "Promethium", "钷", 145, 9, 7, RareEarth, RareEarth},
	{62, "Sm", "Samarium", "钐", 150.4, 9, 8, RareEarth, RareEarth},
	{63, "Eu", "Europium", "铕", 152.0, 9, 9, RareEarth, RareEarth},
	{64, "Gd", "Gadolinium", "钆", 157.3, 9, 10, RareEarth, RareEarth},
	{65, "Tb", "Terbium", "铽", 158.9, 9, 11, RareEarth, RareEarth},
	{66, "Dy", "Dysprosium", "镝", 162.5, 9, 12, RareEarth, RareEarth},
	{67, "Ho", "Holmium", "钬", 164.9, 9, 13, RareEarth, RareEarth},
	{68, "Er", "Erbium", "铒", 167.3, 9, 14, RareEarth, RareEarth},
	{69, "Tm", "Thulium", "铥", 168.9, 9, 15, RareEarth, RareEarth},
	{70, "Yb", "Ytterbium", "镱", 173.0, 9, 16, RareEarth, RareEarth},
	{71, "Lu", "Lutetium", "镥", 175.0, 9, 17, RareEarth, RareEarth},
	{72, "Hf", "Hafnium", "铪", 178.5, 6, 4, Rare, Rare},
	{73, "Ta", "Tantalum", "钽", 180.9, 6, 5, Rare, Rare},
	{74, "W", "Tungsten", "钨", 183.8, 6, 6, Rare, Rare},
	{75, "Re", "Rhenium", "铼", 186.2, 6, 7, Rare, Rare},
	{76, "Os", "Osmium", "锇", 190.2, 6, 8, Precious, Precious},
	{77, "Ir", "Iridium", "铱", 192.2, 6, 9, Precious, Precious},
	{78, "Pt", "Platinum", "铂", 195.1, 6, 10, Precious, Precious},
	{79, "Au", "Gold", "金", 197.0, 6, 11, Precious, Precious},
	{80, "Hg", "Mercury", "汞", 200.6, 6, 12, Scattered, Scattered},
	{81, "Tl", "Thallium", "铊", 204.4, 6, 13, Scattered, Scattered},
	{82, "Pb", "Lead", "铅", 207.2, 6, 14, Base, Base},
	{83, "Bi", "Bismuth", "铋", 209.0, 6, 15, Scattered, Scattered},
	{84, "Po", "Polonium", "钋", 209, 6, 16, Unknown, None},
	{85, "At", "Astatine", "砹", 210, 6, 17, Halogen, None},
	{86, "Rn", "Radon", "氡", 222, 6, 18, NobleGas, None},
	{87, "Fr", "Francium", "钫", 223, 7, 1, Light, Light},
	{88, "Ra", "Radium", "镭", 226, 7, 2, Light, Light},
	{89, "Ac", "Actinium", "锕", 227, 10, 3, Actinide, Actinide},
	{90, "Th", "Thorium", "钍", 232.0, 10, 4, Actinide, Actinide},
	{91, "Pa", "Protactinium", "镤", 231.0, 10, 5, Actinide, Actinide},
	{92, "U", "Uranium", "铀", 238.0, 10, 6, Actinide, Actinide},
	{93, "Np", "Neptunium", "镎", 237, 10, 7, Actinide, Actinide},
	{94, "Pu", "Plutonium", "钚", 244, 10, 8, Actinide, Actinide},
	{95, "Am", "Americium", "镅", 243, 10, 9, Actinide, Actinide},
	{96, "Cm", "Curium", "锔", 247, 10, 10, Actinide, Actinide},
	{97, "Bk", "Berkelium", "锫", 247, 10, 11, Actinide, Actinide},
	{98, "Cf", "Californium", "锎", 251, 10, 12, Actinide, Actinide},
	{99, "Es", "Einsteinium", "锿", 252, 10, 13, Actinide, Actinide},
	{100, "Fm", "Fermium", "镄", 257, 10, 14, Actinide, Actinide},
	{101, "Md", "Mendelevium", "钔", 258, 10, 15, Actinide, Actinide},
	{102, "No", "Nobelium", "锘", 259, 10, 16, Actinide, Actinide},
	{103, "Lr", "Lawrencium", "铹", 266, 10, 17, Actinide, Actinide},
	{104, "Rf", "Rutherfordium", "𬬻", 267, 7, 4, Unknown, None},
	{105, "Db", "Dubnium", "𬭊", 268, 7, 5, Unknown, None},
	{106, "Sg", "Seaborgium", "𬭳", 269, 7, 6, Unknown, None},
	{107, "Bh", "Bohrium", "𬭛", 270, 7, 7, Unknown, None},
	{108, "Hs", "Hassium", "𬭶", 277, 7, 8, Unknown, None},
	{109, "Mt", "Meitnerium", "鿏", 278, 7, 9, Unknown, None},
	{110, "Ds", "Darmstadtium", "𫟼", 281, 7, 10, Unknown, None},
	{111, "Rg", "Roentgenium", "𬬭", 282, 7, 11, Unknown, None},
	{112, "Cn", "Copernicium", "鿔", 285, 7, 12, Unknown, None},
	{113, "Nh", "Nihonium", "鿭", 286, 7, 13, Unknown, None},
	{114, "Fl", "Flerovium", "𫓧", 289, 7, 14, Unknown, None},
	{115, "Mc", "Moscovium", "镆", 290, 7, 15, Unknown, None},
	{116, "Lv", "Livermorium", "𫟷", 293, 7, 16, Unknown, None},
	{117, "Ts", "Tennessine", "鿬", 294, 7, 17, Unknown, None},
	{118, "Og", "Oganesson", "鿫", 294, 7, 18, NobleGas, None},
}
