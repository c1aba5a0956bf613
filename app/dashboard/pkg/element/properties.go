package element

// properties 元素物理属性与主要应用，并非每个元素都有记录
var properties = map[string]Properties{
	"Li": {
		Density: 0.534, Melting: 180.5, Boiling: 1342,
		AppsEN: []string{"Batteries", "Ceramics", "Lubricants", "Pharmaceuticals", "Nuclear"},
		AppsZH: []string{"电池", "陶瓷", "润滑剂", "医药", "核工业"},
	},
	"Be": {
		Density: 1.85, Melting: 1287, Boiling: 2469,
		AppsEN: []string{"Aerospace alloys", "X-ray windows", "Nuclear", "Electronics"},
		AppsZH: []string{"航空合金", "X射线窗", "核工业", "电子"},
	},
	"Na": {
		Density: 0.971, Melting: 97.8, Boiling: 883,
		AppsEN: []string{"Chemical synthesis", "Sodium lamps", "Nuclear coolant"},
		AppsZH: []string{"化学合成", "钠灯", "核反应堆冷却"},
	},
	"Mg": {
		Density: 1.738, Melting: 650, Boiling: 1091,
		AppsEN: []string{"Lightweight alloys", "Automotive", "Aerospace", "Fireworks"},
		AppsZH: []string{"轻合金", "汽车", "航空航天", "烟火"},
	},
	"Al": {
		Density: 2.70, Melting: 660.3, Boiling: 2519,
		AppsEN: []string{"Construction", "Packaging", "Automotive", "Aerospace", "Electrical"},
		AppsZH: []string{"建筑", "包装", "汽车", "航空航天", "电气"},
	},
	"K": {
		Density: 0.862, Melting: 63.4, Boiling: 759,
		AppsEN: []string{"Fertilizer", "Chemical synthesis", "Potassium salts"},
		AppsZH: []string{"肥料", "化学合成", "钾盐"},
	},
	"Ca": {
		Density: 1.55, Melting: 842, Boiling: 1484,
		AppsEN: []string{"Steel alloys", "Cement", "Biological systems"},
		AppsZH: []string{"钢铁合金", "水泥", "生物系统"},
	},
	"Sc": {
		Density: 2.99, Melting: 1541, Boiling: 2836,
		AppsEN: []string{"Aerospace alloys", "Sports equipment", "Lighting"},
		AppsZH: []string{"航空合金", "体育器材", "照明"},
	},
	"Ti": {
		Density: 4.506, Melting: 1668, Boiling: 3287,
		AppsEN: []string{"Aerospace", "Medical implants", "Marine", "Pigments"},
		AppsZH: []string{"航空航天", "医疗植入", "船舶", "颜料"},
	},
	"V": {
		Density: 6.11, Melting: 1910, Boiling: 3407,
		AppsEN: []string{"Steel alloys", "Vanadium flow batteries", "Chemical catalyst"},
		AppsZH: []string{"钢铁合金", "钒液流电池", "化学催化"},
	},
	"Co": {
		Density: 8.90, Melting: 1495, Boiling: 2927,
		AppsEN: []string{"Li-ion batteries", "Superalloys", "Catalysts", "Pigments"},
		AppsZH: []string{"锂离子电池", "高温合金", "催化剂", "颜料"},
	},
	"Ni": {
		Density: 8.908, Melting: 1455, Boiling: 2913,
		AppsEN: []string{"Stainless steel", "EV batteries", "Plating", "Superalloys"},
		AppsZH: []string{"不锈钢", "电动汽车电池", "电镀", "高温合金"},
	},
	"Cu": {
		Density: 8.96, Melting: 1084.6, Boiling: 2562,
		AppsEN: []string{"Electrical wiring", "Electronics", "Construction", "EV motors"},
		AppsZH: []string{"电线电缆", "电子", "建筑", "电动汽车电机"},
	},
	"Zn": {
		Density: 7.134, Melting: 419.5, Boiling: 907,
		AppsEN: []string{"Galvanizing", "Alloys (Brass)", "Batteries", "Die-casting"},
		AppsZH: []string{"镀锌", "合金(黄铜)", "电池", "压铸"},
	},
	"Ga": {
		Density: 5.91, Melting: 29.8, Boiling: 2204,
		AppsEN: []string{"Semiconductors", "LEDs", "GaAs chips", "Solar cells"},
		AppsZH: []string{"半导体", "LED", "砷化镓芯片", "太阳能电池"},
	},
	"Ge": {
		Density: 5.323, Melting: 938.3, Boiling: 2833,
		AppsEN: []string{"Fiber optics", "Infrared optics", "Semiconductors", "PET catalysts"},
		AppsZH: []string{"光纤", "红外光学", "半导体", "PET催化剂"},
	},
	"Se": {
		Density: 4.809, Melting: 221, Boiling: 685,
		AppsEN: []string{"Electronics", "Glass decolorizing", "Solar cells", "Pigments"},
		AppsZH: []string{"电子", "玻璃脱色", "太阳能电池", "颜料"},
	},
	"Rb": {
		Density: 1.532, Melting: 39.3, Boiling: 688,
		AppsEN: []string{"Research", "Atomic clocks", "Medical imaging"},
		AppsZH: []string{"科研", "原子钟", "医学成像"},
	},
	"Sr": {
		Density: 2.64, Melting: 777, Boiling: 1382,
		AppsEN: []string{"Fireworks", "Ferrite magnets", "Medical tracers"},
		AppsZH: []string{"烟花", "铁氧体磁铁", "医学示踪"},
	},
	"Y": {
		Density: 4.469, Melting: 1526, Boiling: 3336,
		AppsEN: []string{"Superconductors", "Laser crystals", "LED phosphors"},
		AppsZH: []string{"超导体", "激光晶体", "LED荧光粉"},
	},
	"Zr": {
		Density: 6.506, Melting: 1855, Boiling: 4409,
		AppsEN: []string{"Nuclear fuel cladding", "Ceramics", "Foundry", "Chemical processing"},
		AppsZH: []string{"核燃料包壳", "陶瓷", "铸造", "化工"},
	},
	"Nb": {
		Density: 8.57, Melting: 2477, Boiling: 4744,
		AppsEN: []string{"Superconducting magnets", "HSLA steel", "Superalloys"},
		AppsZH: []string{"超导磁体", "高强度低合金钢", "高温合金"},
	},
	"Mo": {
		Density: 10.22, Melting: 2623, Boiling: 4639,
		AppsEN: []string{"Steel alloys", "Chemical catalyst", "Lubricants", "Electronics"},
		AppsZH: []string{"钢铁合金", "化学催化", "润滑剂", "电子"},
	},
	"Ru": {
		Density: 12.37, Melting: 2334, Boiling: 4150,
		AppsEN: []string{"Electronics", "Chemical catalysts", "Wear-resistant contacts"},
		AppsZH: []string{"电子", "化学催化", "耐磨触点"},
	},
	"Rh": {
		Density: 12.41, Melting: 1964, Boiling: 3695,
		AppsEN: []string{"Catalytic converters", "Jewelry", "Chemical catalysts"},
		AppsZH: []string{"催化转化器", "珠宝", "化学催化"},
	},
	"Pd": {
		Density: 12.02, Melting: 1554.9, Boiling: 2963,
		AppsEN: []string{"Catalytic converters", "Electronics", "Hydrogen purification", "Dentistry"},
		AppsZH: []string{"催化转化器", "电子", "氢气净化", "牙科"},
	},
	"Ag": {
		Density: 10.49, Melting: 961.8, Boiling: 2162,
		AppsEN: []string{"Electronics", "Solar panels", "Photography", "Jewelry", "Antimicrobial"},
		AppsZH: []string{"电子", "光伏", "摄影", "珠宝", "抗菌"},
	},
	"Cd": {
		Density: 8.69, Melting: 321.1, Boiling: 767,
		AppsEN: []string{"NiCd batteries", "Pigments", "Coatings", "Nuclear control rods"},
		AppsZH: []string{"镍镉电池", "颜料", "镀层", "核控制棒"},
	},
	"In": {
		Density: 7.31, Melting: 156.6, Boiling: 2072,
		AppsEN: []string{"ITO displays", "Semiconductors", "Solders", "Thermal interface"},
		AppsZH: []string{"ITO显示屏", "半导体", "焊料", "导热材料"},
	},
	"Sn": {
		Density: 7.287, Melting: 231.9, Boiling: 2602,
		AppsEN: []string{"Solder", "Tin plating", "Alloys (Bronze)", "Chemicals"},
		AppsZH: []string{"焊锡", "镀锡", "合金(青铜)", "化工"},
	},
	"Sb": {
		Density: 6.685, Melting: 630.6, Boiling: 1587,
		AppsEN: []string{"Flame retardants", "Lead-acid batteries", "Semiconductors"},
		AppsZH: []string{"阻燃剂", "铅酸电池", "半导体"},
	},
	"Te": {
		Density: 6.232, Melting: 449.5, Boiling: 988,
		AppsEN: []string{"Thermoelectric devices", "Solar cells (CdTe)", "Alloys"},
		AppsZH: []string{"热电器件", "太阳能电池(CdTe)", "合金"},
	},
	"Cs": {
		Density: 1.873, Melting: 28.4, Boiling: 671,
		AppsEN: []string{"Atomic clocks", "Drilling fluids", "Medical"},
		AppsZH: []string{"原子钟", "钻井液", "医疗"},
	},
	"Ba": {
		Density: 3.594, Melting: 727, Boiling: 1845,
		AppsEN: []string{"Drilling fluids", "Barium meals", "Glass", "Fireworks"},
		AppsZH: []string{"钻井液", "钡餐", "玻璃", "烟花"},
	},
	"Hf": {
		Density: 13.31, Melting: 2233, Boiling: 4603,
		AppsEN: []string{"Nuclear control rods", "Superalloys", "Plasma cutting"},
		AppsZH: []string{"核控制棒", "高温合金", "等离子切割"},
	},
	"Ta": {
		Density: 16.69, Melting: 3017, Boiling: 5458,
		AppsEN: []string{"Capacitors", "Surgical instruments", "Chemical processing", "Superalloys"},
		AppsZH: []string{"电容器", "手术器械", "化工设备", "高温合金"},
	},
	"W": {
		Density: 19.25, Melting: 3422, Boiling: 5555,
		AppsEN: []string{"Cutting tools", "Filaments", "Military", "Mining drills"},
		AppsZH: []string{"切削工具", "灯丝", "军工", "采矿钻头"},
	},
	"Re": {
		Density: 21.02, Melting: 3186, Boiling: 5596,
		AppsEN: []string{"Jet engine superalloys", "Catalysts", "Thermocouples"},
		AppsZH: []string{"喷气发动机高温合金", "催化剂", "热电偶"},
	},
	"Os": {
		Density: 22.59, Melting: 3033, Boiling: 5012,
		AppsEN: []string{"Pen tips", "Electrical contacts", "Catalysts"},
		AppsZH: []string{"笔尖", "电触点", "催化剂"},
	},
	"Ir": {
		Density: 22.56, Melting: 2446, Boiling: 4428,
		AppsEN: []string{"Spark plugs", "Crucibles", "Electrodes", "Standards"},
		AppsZH: []string{"火花塞", "坩埚", "电极", "度量标准"},
	},
	"Pt": {
		Density: 21.45, Melting: 1768.3, Boiling: 3825,
		AppsEN: []string{"Catalytic converters", "Jewelry", "Fuel cells", "Medical"},
		AppsZH: []string{"催化转化器", "珠宝", "燃料电池", "医疗"},
	},
	"Au": {
		Density: 19.32, Melting: 1064.2, Boiling: 2856,
		AppsEN: []string{"Jewelry", "Electronics", "Central bank reserves", "Medical", "Aerospace"},
		AppsZH: []string{"珠宝", "电子", "央行储备", "医疗", "航空航天"},
	},
	"Hg": {
		Density: 13.534, Melting: -38.8, Boiling: 356.7,
		AppsEN: []string{"Thermometers (legacy)", "Dental amalgam", "Fluorescent lamps"},
		AppsZH: []string{"温度计(传统)", "牙科汞合金", "荧光灯"},
	},
	"Tl": {
		Density: 11.85, Melting: 304, Boiling: 1473,
		AppsEN: []string{"Semiconductor research", "Superconductors", "Medical imaging"},
		AppsZH: []string{"半导体研究", "超导体", "医学成像"},
	},
	"Pb": {
		Density: 11.34, Melting: 327.5, Boiling: 1749,
		AppsEN: []string{"Lead-acid batteries", "Radiation shielding", "Ammunition", "Cable sheathing"},
		AppsZH: []string{"铅酸电池", "辐射屏蔽", "弹药", "电缆护套"},
	},
	"Bi": {
		Density: 9.78, Melting: 271.4, Boiling: 1564,
		AppsEN: []string{"Pharmaceuticals", "Alloys", "Pigments", "Lead-free solder"},
		AppsZH: []string{"医药", "合金", "颜料", "无铅焊料"},
	},
	"La": {
		Density: 6.15, Melting: 920, Boiling: 3464,
		AppsEN: []string{"Optical glass", "Catalysts", "Hydrogen storage", "Battery alloys"},
		AppsZH: []string{"光学玻璃", "催化剂", "储氢", "电池合金"},
	},
	"Ce": {
		Density: 6.77, Melting: 798, Boiling: 3443,
		AppsEN: []string{"Catalytic converters", "Glass polishing", "Lighter flints", "Steel alloys"},
		AppsZH: []string{"催化转化器", "玻璃抛光", "打火石", "钢合金"},
	},
	"Nd": {
		Density: 7.01, Melting: 1024, Boiling: 3074,
		AppsEN: []string{"NdFeB permanent magnets", "Lasers", "Glass coloring", "EV motors"},
		AppsZH: []string{"钕铁硼永磁体", "激光", "玻璃着色", "电动汽车电机"},
	},
	"Sm": {
		Density: 7.52, Melting: 1072, Boiling: 1900,
		AppsEN: []string{"SmCo magnets", "Nuclear reactor", "Carbon-arc lighting"},
		AppsZH: []string{"钐钴磁铁", "核反应堆", "碳弧灯"},
	},
	"Eu": {
		Density: 5.24, Melting: 822, Boiling: 1529,
		AppsEN: []string{"Red phosphors", "Euro banknote security", "Nuclear control"},
		AppsZH: []string{"红色荧光粉", "欧元防伪", "核控制"},
	},
	"Gd": {
		Density: 7.90, Melting: 1313, Boiling: 3273,
		AppsEN: []string{"MRI contrast agents", "Nuclear shielding", "Magneto-optical"},
		AppsZH: []string{"MRI对比剂", "核屏蔽", "磁光材料"},
	},
	"Dy": {
		Density: 8.55, Melting: 1412, Boiling: 2567,
		AppsEN: []string{"NdFeB magnet additive", "Nuclear control rods", "Lasers"},
		AppsZH: []string{"钕铁硼磁铁添加", "核控制棒", "激光"},
	},
	"Tb": {
		Density: 8.23, Melting: 1356, Boiling: 3230,
		AppsEN: []string{"Green phosphors", "Magneto-optical media", "Fuel cells"},
		AppsZH: []string{"绿色荧光粉", "磁光介质", "燃料电池"},
	},
	"Er": {
		Density: 9.07, Melting: 1529, Boiling: 2868,
		AppsEN: []string{"Fiber optic amplifiers", "Laser", "Nuclear", "Glass coloring"},
		AppsZH: []string{"光纤放大器", "激光", "核工业", "玻璃着色"},
	},
	"Yb": {
		Density: 6.90, Melting: 824, Boiling: 1196,
		AppsEN: []string{"Stress gauges", "Lasers", "Metallurgy"},
		AppsZH: []string{"应力计", "激光", "冶金"},
	},
	"Lu": {
		Density: 9.84, Melting: 1663, Boiling: 3402,
		AppsEN: []string{"PET scan catalysts", "Tantalite processing", "LED phosphors"},
		AppsZH: []string{"PET扫描催化", "钽铁矿加工", "LED荧光粉"},
	},
	"Pr": {
		Density: 6.77, Melting: 931, Boiling: 3520,
		AppsEN: []string{"Permanent magnets", "Aircraft engines", "Glass coloring", "Lighter flints"},
		AppsZH: []string{"永磁材料", "航空发动机", "玻璃着色", "打火石"},
	},
	"Ho": {
		Density: 8.80, Melting: 1474, Boiling: 2700,
		AppsEN: []string{"Nuclear control", "Magnets", "Lasers", "Spectral calibration"},
		AppsZH: []string{"核控制", "磁铁", "激光", "光谱校准"},
	},
	"Tm": {
		Density: 9.32, Melting: 1545, Boiling: 1950,
		AppsEN: []string{"Portable X-ray devices", "Laser", "Nuclear"},
		AppsZH: []string{"便携X射线", "激光", "核工业"},
	},
	"Pm": {
		Density: 7.26, Melting: 1042, Boiling: 3000,
		AppsEN: []string{"Nuclear batteries", "Luminous paint", "Research"},
		AppsZH: []string{"核电池", "夜光涂料", "科研"},
	},
	"Fr": {
		Density: 2.48, Melting: 27, Boiling: 677,
		AppsEN: []string{"Research only"},
		AppsZH: []string{"仅科研"},
	},
	"Ra": {
		Density: 5.5, Melting: 700, Boiling: 1737,
		AppsEN: []string{"Historical medical use", "Research"},
		AppsZH: []string{"历史医疗", "科研"},
	},
}
