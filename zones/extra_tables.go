// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zones

var extraStandard = []Record{
	{Offset: hm(-5, 0), DST: 0, Code: "ACT", Name: "Acre Time", ID: StandardID | 28},
	{Offset: hm(8, 45), DST: 0, Code: "ACWST", Name: "Australian Central Western Standard Time", ID: StandardID | 29},
	{Offset: hm(4, 30), DST: 0, Code: "AFT", Name: "Afghanistan Time", ID: StandardID | 30},
	{Offset: hm(6, 0), DST: 0, Code: "ALMT", Name: "Alma-Ata Time", ID: StandardID | 31},
	{Offset: hm(-4, 0), DST: 0, Code: "AMT", Name: "Amazon Time", ID: StandardID | 32},
	{Offset: hm(4, 0), DST: 0, Code: "AMT", Name: "Armenia Time", ID: StandardID | 33},
	{Offset: hm(12, 0), DST: 0, Code: "ANAT", Name: "Anadyr Time", ID: StandardID | 34},
	{Offset: hm(5, 0), DST: 0, Code: "AQTT", Name: "Aqtobe Time", ID: StandardID | 35},
	{Offset: hm(-3, 0), DST: 0, Code: "ART", Name: "Argentina Time", ID: StandardID | 36},
	{Offset: hm(3, 0), DST: 0, Code: "AST", Name: "Arabia Standard Time", ID: StandardID | 37},
	{Offset: hm(4, 0), DST: 0, Code: "AZT", Name: "Azerbaijan Time", ID: StandardID | 38},
	{Offset: hm(-12, 0), DST: 0, Code: "AoE", Name: "Anywhere on Earth", ID: StandardID | 39},
	{Offset: hm(8, 0), DST: 0, Code: "BNT", Name: "Brunei Darussalam Time", ID: StandardID | 40},
	{Offset: hm(-4, 0), DST: 0, Code: "BOT", Name: "Bolivia Time", ID: StandardID | 41},
	{Offset: hm(-3, 0), DST: 0, Code: "BRT", Name: "Brasília Time", ID: StandardID | 42},
	{Offset: hm(6, 0), DST: 0, Code: "BST", Name: "Bangladesh Standard Time", ID: StandardID | 43},
	{Offset: hm(6, 0), DST: 0, Code: "BTT", Name: "Bhutan Time", ID: StandardID | 44},
	{Offset: hm(8, 0), DST: 0, Code: "CAST", Name: "Casey Time", ID: StandardID | 45},
	{Offset: hm(2, 0), DST: 0, Code: "CAT", Name: "Central Africa Time", ID: StandardID | 46},
	{Offset: hm(6, 30), DST: 0, Code: "CCT", Name: "Cocos Islands Time", ID: StandardID | 47},
	{Offset: hm(12, 45), DST: 0, Code: "CHAST", Name: "Chatham Island Standard Time", ID: StandardID | 48},
	{Offset: hm(8, 0), DST: 0, Code: "CHOT", Name: "Choibalsan Time", ID: StandardID | 49},
	{Offset: hm(10, 0), DST: 0, Code: "CHUT", Name: "Chuuk Time", ID: StandardID | 50},
	{Offset: hm(-10, 0), DST: 0, Code: "CKT", Name: "Cook Island Time", ID: StandardID | 51},
	{Offset: hm(-4, 0), DST: 0, Code: "CLT", Name: "Chile Standard Time", ID: StandardID | 52},
	{Offset: hm(-5, 0), DST: 0, Code: "COT", Name: "Colombia Time", ID: StandardID | 53},
	{Offset: hm(8, 0), DST: 0, Code: "CST", Name: "China Standard Time", ID: StandardID | 54},
	{Offset: hm(-5, 0), DST: 0, Code: "CST", Name: "Cuba Standard Time", ID: StandardID | 55},
	{Offset: hm(-1, 0), DST: 0, Code: "CVT", Name: "Cape Verde Time", ID: StandardID | 56},
	{Offset: hm(10, 0), DST: 0, Code: "ChST", Name: "Chamorro Standard Time", ID: StandardID | 57},
	{Offset: hm(7, 0), DST: 0, Code: "DAVT", Name: "Davis Time", ID: StandardID | 58},
	{Offset: hm(-6, 0), DST: 0, Code: "EAST", Name: "Easter Island Standard Time", ID: StandardID | 59},
	{Offset: hm(3, 0), DST: 0, Code: "EAT", Name: "Eastern Africa Time", ID: StandardID | 60},
	{Offset: hm(-5, 0), DST: 0, Code: "ECT", Name: "Ecuador Time", ID: StandardID | 61},
	{Offset: hm(-1, 0), DST: 0, Code: "EGT", Name: "East Greenland Time", ID: StandardID | 62},
	{Offset: hm(3, 0), DST: 0, Code: "FET", Name: "Further-Eastern European Time", ID: StandardID | 63},
	{Offset: hm(12, 0), DST: 0, Code: "FJT", Name: "Fiji Time", ID: StandardID | 64},
	{Offset: hm(-4, 0), DST: 0, Code: "FKT", Name: "Falkland Island Time", ID: StandardID | 65},
	{Offset: hm(-2, 0), DST: 0, Code: "FNT", Name: "Fernando de Noronha Time", ID: StandardID | 66},
	{Offset: hm(-6, 0), DST: 0, Code: "GALT", Name: "Galapagos Time", ID: StandardID | 67},
	{Offset: hm(-9, 0), DST: 0, Code: "GAMT", Name: "Gambier Time", ID: StandardID | 68},
	{Offset: hm(4, 0), DST: 0, Code: "GET", Name: "Georgia Standard Time", ID: StandardID | 69},
	{Offset: hm(-3, 0), DST: 0, Code: "GFT", Name: "French Guiana Time", ID: StandardID | 70},
	{Offset: hm(12, 0), DST: 0, Code: "GILT", Name: "Gilbert Island Time", ID: StandardID | 71},
	{Offset: hm(0, 0), DST: 0, Code: "GMT", Name: "Greenwich Mean Time", ID: StandardID | 72},
	{Offset: hm(4, 0), DST: 0, Code: "GST", Name: "Gulf Standard Time", ID: StandardID | 73},
	{Offset: hm(-2, 0), DST: 0, Code: "GST", Name: "South Georgia Time", ID: StandardID | 74},
	{Offset: hm(-4, 0), DST: 0, Code: "GYT", Name: "Guyana Time", ID: StandardID | 75},
	{Offset: hm(8, 0), DST: 0, Code: "HKT", Name: "Hong Kong Time", ID: StandardID | 76},
	{Offset: hm(7, 0), DST: 0, Code: "HOVT", Name: "Hovd Time", ID: StandardID | 77},
	{Offset: hm(7, 0), DST: 0, Code: "ICT", Name: "Indochina Time", ID: StandardID | 78},
	{Offset: hm(6, 0), DST: 0, Code: "IOT", Name: "Indian Chagos Time", ID: StandardID | 79},
	{Offset: hm(8, 0), DST: 0, Code: "IRKT", Name: "Irkutsk Time", ID: StandardID | 80},
	{Offset: hm(3, 30), DST: 0, Code: "IRST", Name: "Iran Standard Time", ID: StandardID | 81},
	{Offset: hm(1, 0), DST: 0, Code: "IST", Name: "Irish Standard Time", ID: StandardID | 82},
	{Offset: hm(2, 0), DST: 0, Code: "IST", Name: "Israel Standard Time", ID: StandardID | 83},
	{Offset: hm(6, 0), DST: 0, Code: "KGT", Name: "Kyrgyzstan Time", ID: StandardID | 84},
	{Offset: hm(11, 0), DST: 0, Code: "KOST", Name: "Kosrae Time", ID: StandardID | 85},
	{Offset: hm(7, 0), DST: 0, Code: "KRAT", Name: "Krasnoyarsk Time", ID: StandardID | 86},
	{Offset: hm(9, 0), DST: 0, Code: "KST", Name: "Korea Standard Time", ID: StandardID | 87},
	{Offset: hm(4, 0), DST: 0, Code: "KUYT", Name: "Kuybyshev Time", ID: StandardID | 88},
	{Offset: hm(10, 30), DST: 0, Code: "LHST", Name: "Lord Howe Standard Time", ID: StandardID | 89},
	{Offset: hm(14, 0), DST: 0, Code: "LINT", Name: "Line Islands Time", ID: StandardID | 90},
	{Offset: hm(10, 0), DST: 0, Code: "MAGT", Name: "Magadan Time", ID: StandardID | 91},
	{Offset: hm(-9, -30), DST: 0, Code: "MART", Name: "Marquesas Time", ID: StandardID | 92},
	{Offset: hm(5, 0), DST: 0, Code: "MAWT", Name: "Mawson Time", ID: StandardID | 93},
	{Offset: hm(12, 0), DST: 0, Code: "MHT", Name: "Marshall Islands Time", ID: StandardID | 94},
	{Offset: hm(6, 30), DST: 0, Code: "MMT", Name: "Myanmar Time", ID: StandardID | 95},
	{Offset: hm(4, 0), DST: 0, Code: "MUT", Name: "Mauritius Time", ID: StandardID | 96},
	{Offset: hm(5, 0), DST: 0, Code: "MVT", Name: "Maldives Time", ID: StandardID | 97},
	{Offset: hm(8, 0), DST: 0, Code: "MYT", Name: "Malaysia Time", ID: StandardID | 98},
	{Offset: hm(11, 0), DST: 0, Code: "NCT", Name: "New Caledonia Time", ID: StandardID | 99},
	{Offset: hm(6, 0), DST: 0, Code: "NOVT", Name: "Novosibirsk Time", ID: StandardID | 100},
	{Offset: hm(5, 45), DST: 0, Code: "NPT", Name: "Nepal Time", ID: StandardID | 101},
	{Offset: hm(12, 0), DST: 0, Code: "NRT", Name: "Nauru Time", ID: StandardID | 102},
	{Offset: hm(-11, 0), DST: 0, Code: "NUT", Name: "Niue Time", ID: StandardID | 103},
	{Offset: hm(6, 0), DST: 0, Code: "OMST", Name: "Omsk Standard Time", ID: StandardID | 104},
	{Offset: hm(5, 0), DST: 0, Code: "ORAT", Name: "Oral Time", ID: StandardID | 105},
	{Offset: hm(-5, 0), DST: 0, Code: "PET", Name: "Peru Time", ID: StandardID | 106},
	{Offset: hm(12, 0), DST: 0, Code: "PETT", Name: "Kamchatka Time", ID: StandardID | 107},
	{Offset: hm(10, 0), DST: 0, Code: "PGT", Name: "Papua New Guinea Time", ID: StandardID | 108},
	{Offset: hm(13, 0), DST: 0, Code: "PHOT", Name: "Phoenix Island Time", ID: StandardID | 109},
	{Offset: hm(8, 0), DST: 0, Code: "PHT", Name: "Philippine Time", ID: StandardID | 110},
	{Offset: hm(5, 0), DST: 0, Code: "PKT", Name: "Pakistan Standard Time", ID: StandardID | 111},
	{Offset: hm(-3, 0), DST: 0, Code: "PMST", Name: "Pierre & Miquelon Standard Time", ID: StandardID | 112},
	{Offset: hm(11, 0), DST: 0, Code: "PONT", Name: "Pohnpei Standard Time", ID: StandardID | 113},
	{Offset: hm(-8, 0), DST: 0, Code: "PST", Name: "Pitcairn Standard Time", ID: StandardID | 114},
	{Offset: hm(9, 0), DST: 0, Code: "PWT", Name: "Palau Time", ID: StandardID | 115},
	{Offset: hm(-4, 0), DST: 0, Code: "PYT", Name: "Paraguay Time", ID: StandardID | 116},
	{Offset: hm(6, 0), DST: 0, Code: "QYZT", Name: "Qyzylorda Time", ID: StandardID | 117},
	{Offset: hm(4, 0), DST: 0, Code: "RET", Name: "Reunion Time", ID: StandardID | 118},
	{Offset: hm(-3, 0), DST: 0, Code: "ROTT", Name: "Rothera Time", ID: StandardID | 119},
	{Offset: hm(10, 0), DST: 0, Code: "SAKT", Name: "Sakhalin Time", ID: StandardID | 120},
	{Offset: hm(4, 0), DST: 0, Code: "SAMT", Name: "Samara Time", ID: StandardID | 121},
	{Offset: hm(2, 0), DST: 0, Code: "SAST", Name: "South Africa Standard Time", ID: StandardID | 122},
	{Offset: hm(11, 0), DST: 0, Code: "SBT", Name: "Solomon Islands Time", ID: StandardID | 123},
	{Offset: hm(4, 0), DST: 0, Code: "SCT", Name: "Seychelles Time", ID: StandardID | 124},
	{Offset: hm(8, 0), DST: 0, Code: "SGT", Name: "Singapore Time", ID: StandardID | 125},
	{Offset: hm(11, 0), DST: 0, Code: "SRET", Name: "Srednekolymsk Time", ID: StandardID | 126},
	{Offset: hm(-3, 0), DST: 0, Code: "SRT", Name: "Suriname Time", ID: StandardID | 127},
	{Offset: hm(-11, 0), DST: 0, Code: "SST", Name: "Samoa Standard Time", ID: StandardID | 128},
	{Offset: hm(3, 0), DST: 0, Code: "SYOT", Name: "Syowa Time", ID: StandardID | 129},
	{Offset: hm(-10, 0), DST: 0, Code: "TAHT", Name: "Tahiti Time", ID: StandardID | 130},
	{Offset: hm(5, 0), DST: 0, Code: "TFT", Name: "French Southern and Antarctic Time", ID: StandardID | 131},
	{Offset: hm(5, 0), DST: 0, Code: "TJT", Name: "Tajikistan Time", ID: StandardID | 132},
	{Offset: hm(13, 0), DST: 0, Code: "TKT", Name: "Tokelau Time", ID: StandardID | 133},
	{Offset: hm(9, 0), DST: 0, Code: "TLT", Name: "East Timor Time", ID: StandardID | 134},
	{Offset: hm(5, 0), DST: 0, Code: "TMT", Name: "Turkmenistan Time", ID: StandardID | 135},
	{Offset: hm(13, 0), DST: 0, Code: "TOT", Name: "Tonga Time", ID: StandardID | 136},
	{Offset: hm(12, 0), DST: 0, Code: "TVT", Name: "Tuvalu Time", ID: StandardID | 137},
	{Offset: hm(8, 0), DST: 0, Code: "ULAT", Name: "Ulaanbaatar Time", ID: StandardID | 138},
	{Offset: hm(-3, 0), DST: 0, Code: "UYT", Name: "Uruguay Time", ID: StandardID | 139},
	{Offset: hm(5, 0), DST: 0, Code: "UZT", Name: "Uzbekistan Time", ID: StandardID | 140},
	{Offset: hm(-4, -30), DST: 0, Code: "VET", Name: "Venezuelan Standard Time", ID: StandardID | 141},
	{Offset: hm(10, 0), DST: 0, Code: "VLAT", Name: "Vladivostok Time", ID: StandardID | 142},
	{Offset: hm(6, 0), DST: 0, Code: "VOST", Name: "Vostok Time", ID: StandardID | 143},
	{Offset: hm(11, 0), DST: 0, Code: "VUT", Name: "Vanuatu Time", ID: StandardID | 144},
	{Offset: hm(12, 0), DST: 0, Code: "WAKT", Name: "Wake Time", ID: StandardID | 145},
	{Offset: hm(0, 0), DST: 0, Code: "WET", Name: "Western European Time", ID: StandardID | 146},
	{Offset: hm(12, 0), DST: 0, Code: "WFT", Name: "Wallis and Futuna Time", ID: StandardID | 147},
	{Offset: hm(-3, 0), DST: 0, Code: "WGT", Name: "West Greenland Time", ID: StandardID | 148},
	{Offset: hm(7, 0), DST: 0, Code: "WIB", Name: "Western Indonesian Time", ID: StandardID | 149},
	{Offset: hm(9, 0), DST: 0, Code: "WIT", Name: "Eastern Indonesian Time", ID: StandardID | 150},
	{Offset: hm(8, 0), DST: 0, Code: "WITA", Name: "Central Indonesian Time", ID: StandardID | 151},
	{Offset: hm(13, 0), DST: 0, Code: "WST", Name: "West Samoa Time", ID: StandardID | 152},
	{Offset: hm(0, 0), DST: 0, Code: "WT", Name: "Western Sahara Standard Time", ID: StandardID | 153},
	{Offset: hm(9, 0), DST: 0, Code: "YAKT", Name: "Yakutsk Time", ID: StandardID | 154},
	{Offset: hm(10, 0), DST: 0, Code: "YAPT", Name: "Yap Time", ID: StandardID | 155},
	{Offset: hm(5, 0), DST: 0, Code: "YEKT", Name: "Yekaterinburg Time", ID: StandardID | 156},
}

var extraDaylight = []Record{
	{Offset: hm(3, 0), DST: dstHour, Code: "ADT", Name: "Arabia Daylight Time", ID: DaylightID | 18},
	{Offset: hm(-4, 0), DST: dstHour, Code: "AMST", Name: "Amazon Summer Time", ID: DaylightID | 19},
	{Offset: hm(-1, 0), DST: dstHour, Code: "AZOST", Name: "Azores Summer Time", ID: DaylightID | 20},
	{Offset: hm(4, 0), DST: dstHour, Code: "AZST", Name: "Azerbaijan Summer Time", ID: DaylightID | 21},
	{Offset: hm(-3, 0), DST: dstHour, Code: "BRST", Name: "Brasília Summer Time", ID: DaylightID | 22},
	{Offset: hm(-4, 0), DST: dstHour, Code: "CDT", Name: "Cuba Daylight Time", ID: DaylightID | 23},
	{Offset: hm(12, 45), DST: dstHour, Code: "CHADT", Name: "Chatham Island Daylight Time", ID: DaylightID | 24},
	{Offset: hm(-4, 0), DST: dstHour, Code: "CLST", Name: "Chile Summer Time", ID: DaylightID | 25},
	{Offset: hm(-6, 0), DST: dstHour, Code: "EASST", Name: "Easter Island Summer Time", ID: DaylightID | 26},
	{Offset: hm(-1, 0), DST: dstHour, Code: "EGST", Name: "Eastern Greenland Summer Time", ID: DaylightID | 27},
	{Offset: hm(-4, 0), DST: dstHour, Code: "FKST", Name: "Falkland Islands Summer Time", ID: DaylightID | 28},
	{Offset: hm(2, 0), DST: dstHour, Code: "IDT", Name: "Israel Daylight Time", ID: DaylightID | 29},
	{Offset: hm(3, 30), DST: dstHour, Code: "IRDT", Name: "Iran Daylight Time", ID: DaylightID | 30},
	{Offset: hm(8, 0), DST: dstHour, Code: "IRKST", Name: "Irkutsk Summer Time", ID: DaylightID | 31},
	{Offset: hm(7, 0), DST: dstHour, Code: "KRAST", Name: "Krasnoyarsk Summer Time", ID: DaylightID | 32},
	{Offset: hm(10, 0), DST: dstHour, Code: "LHDT", Name: "Lord Howe Daylight Time", ID: DaylightID | 33},
	{Offset: hm(11, 0), DST: dstHour, Code: "MAGST", Name: "Magadan Summer Time", ID: DaylightID | 34},
	{Offset: hm(6, 0), DST: dstHour, Code: "NOVST", Name: "Novosibirsk Summer Time", ID: DaylightID | 35},
	{Offset: hm(8, 0), DST: dstHour, Code: "OMSST", Name: "Omsk Summer Time", ID: DaylightID | 36},
	{Offset: hm(13, 0), DST: dstHour, Code: "PETST", Name: "Kamchatka Summer Time", ID: DaylightID | 37},
	{Offset: hm(-3, 0), DST: dstHour, Code: "PMDT", Name: "Pierre & Miquelon Daylight Time", ID: DaylightID | 38},
	{Offset: hm(-3, 0), DST: dstHour, Code: "UYST", Name: "Uruguay Summer Time", ID: DaylightID | 39},
	{Offset: hm(10, 0), DST: dstHour, Code: "VLAST", Name: "Vladivostok Summer Time", ID: DaylightID | 40},
	{Offset: hm(-4, 0), DST: dstHour, Code: "WARST", Name: "Western Argentine Summer Time", ID: DaylightID | 41},
	{Offset: hm(1, 0), DST: dstHour, Code: "WAST", Name: "West Africa Summer Time", ID: DaylightID | 42},
	{Offset: hm(-3, 0), DST: dstHour, Code: "WGST", Name: "Western Greenland Summer Time", ID: DaylightID | 43},
	{Offset: hm(0, 0), DST: dstHour, Code: "WST", Name: "Western Sahara Summer Time", ID: DaylightID | 44},
	{Offset: hm(9, 0), DST: dstHour, Code: "YAKST", Name: "Yakutsk Summer Time", ID: DaylightID | 45},
	{Offset: hm(5, 0), DST: dstHour, Code: "YEKST", Name: "Yekaterinburg Summer Time", ID: DaylightID | 46},
	{Offset: hm(12, 0), DST: dstHour, Code: "FJST", Name: "Fiji Summer Time", ID: DaylightID | 47},
	{Offset: hm(-4, 0), DST: dstHour, Code: "PYST", Name: "Paraguay Summer Time", ID: DaylightID | 48},
	{Offset: hm(4, 0), DST: dstHour, Code: "AMST", Name: "Armenia Summer Time", ID: DaylightID | 49},
}
