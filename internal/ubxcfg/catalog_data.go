package ubxcfg

// baseItems and msgoutFamilies are the static, hand-authored backbone of the
// catalog. Scope note (see DESIGN.md): the full receiver catalog in the
// original firmware generator runs to roughly a thousand items; this table
// covers every group family named in spec.md/original_source with a
// representative, internally consistent cross-section, plus the exact items
// pinned by the spec.md §8 fixtures (S1, S2). Extending it to the full set is
// purely additive — append literals, no structural change.

// msgoutFamily is a generator descriptor expanded by catalog.go's init()
// into five per-port Item entries (I2C/UART1/UART2/USB/SPI) plus one
// MsgRate descriptor.
type msgoutFamily struct {
	shortName string
	baseID    uint32 // I2C (port offset 0) item ID; UART1/UART2/USB/SPI follow at +1/+2/+3/+4
}

// msgoutFamilies lists the outputable messages this catalog tracks rates
// for. UBX_NAV_PVT and UBX_MON_COMMS carry the exact IDs pinned by spec.md
// §8 S1; the rest use a consistent synthetic numbering scheme (not claimed to
// match undisclosed firmware values).
var msgoutFamilies = []msgoutFamily{
	{"UBX_NAV_PVT", 0x20910006},
	{"UBX_NAV_SAT", 0x20910015},
	{"UBX_NAV_DOP", 0x20910038},
	{"UBX_NAV_SIG", 0x20910345},
	{"UBX_NAV_STATUS", 0x2091001a},
	{"UBX_NAV_TIMEUTC", 0x2091005a},
	{"UBX_NAV_HPPOSLLH", 0x20910029},
	{"UBX_NAV_HPPOSECEF", 0x20910030},
	{"UBX_NAV_CLOCK", 0x20910064},
	{"UBX_NAV_VELNED", 0x20910044},
	{"UBX_NAV_ORB", 0x20910010},
	{"UBX_NAV_SVIN", 0x20910087},
	{"UBX_RXM_RAWX", 0x209102a4},
	{"UBX_RXM_SFRBX", 0x20910231},
	{"UBX_RXM_RTCM", 0x2091026b},
	{"UBX_MON_COMMS", 0x2091034f},
	{"UBX_MON_RF", 0x20910359},
	{"UBX_MON_HW", 0x209101b4},
	{"UBX_TIM_TP", 0x20910178},
	{"NMEA_ID_GGA", 0x209100ba},
	{"NMEA_ID_RMC", 0x209100ac},
	{"NMEA_ID_GSA", 0x209100bf},
	{"NMEA_ID_GSV", 0x209100c4},
	{"NMEA_ID_VTG", 0x209100b1},
	{"NMEA_ID_GLL", 0x209100c9},
	{"RTCM_3X_TYPE1005", 0x209102bd},
	{"RTCM_3X_TYPE1077", 0x209102cd},
	{"RTCM_3X_TYPE1087", 0x209102d2},
	{"RTCM_3X_TYPE1230", 0x20910303},
}

var baseItems = []Item{
	// --- CFG-UART1 ---------------------------------------------------
	{ID: 0x40520001, Type: U4, Name: "CFG-UART1-BAUDRATE", Title: "The baud rate that should be configured on the UART1"},
	{ID: 0x20520002, Type: E1, Name: "CFG-UART1-STOPBITS", Title: "Number of stop bits", Consts: []Const{
		{"HALF", "0.5 stop bit", 0}, {"ONE", "1 stop bit", 1}, {"ONEHALF", "1.5 stop bits", 2}, {"TWO", "2 stop bits", 3},
	}},
	{ID: 0x20520003, Type: E1, Name: "CFG-UART1-DATABITS", Title: "Number of data bits", Consts: []Const{
		{"EIGHT", "8 data bits", 0}, {"SEVEN", "7 data bits", 1},
	}},
	{ID: 0x20520004, Type: E1, Name: "CFG-UART1-PARITY", Title: "Parity mode", Consts: []Const{
		{"NONE", "No parity", 0}, {"ODD", "Odd parity", 1}, {"EVEN", "Even parity", 2},
	}},
	{ID: 0x10520005, Type: L, Name: "CFG-UART1-ENABLED", Title: "Enable the UART1"},
	{ID: 0x10730001, Type: L, Name: "CFG-UART1INPROT-UBX", Title: "Enable UBX input on UART1"},
	{ID: 0x10730002, Type: L, Name: "CFG-UART1INPROT-NMEA", Title: "Enable NMEA input on UART1"},
	{ID: 0x10730004, Type: L, Name: "CFG-UART1INPROT-RTCM3X", Title: "Enable RTCM3X input on UART1"},
	{ID: 0x10740001, Type: L, Name: "CFG-UART1OUTPROT-UBX", Title: "Enable UBX output on UART1"},
	{ID: 0x10740002, Type: L, Name: "CFG-UART1OUTPROT-NMEA", Title: "Enable NMEA output on UART1"},
	{ID: 0x10740004, Type: L, Name: "CFG-UART1OUTPROT-RTCM3X", Title: "Enable RTCM3X output on UART1"},

	// --- CFG-UART2 ---------------------------------------------------
	{ID: 0x40530001, Type: U4, Name: "CFG-UART2-BAUDRATE", Title: "The baud rate that should be configured on the UART2"},
	{ID: 0x20530002, Type: E1, Name: "CFG-UART2-STOPBITS", Title: "Number of stop bits", Consts: []Const{
		{"HALF", "0.5 stop bit", 0}, {"ONE", "1 stop bit", 1}, {"ONEHALF", "1.5 stop bits", 2}, {"TWO", "2 stop bits", 3},
	}},
	{ID: 0x20530003, Type: E1, Name: "CFG-UART2-DATABITS", Title: "Number of data bits", Consts: []Const{
		{"EIGHT", "8 data bits", 0}, {"SEVEN", "7 data bits", 1},
	}},
	{ID: 0x20530004, Type: E1, Name: "CFG-UART2-PARITY", Title: "Parity mode", Consts: []Const{
		{"NONE", "No parity", 0}, {"ODD", "Odd parity", 1}, {"EVEN", "Even parity", 2},
	}},
	{ID: 0x10530005, Type: L, Name: "CFG-UART2-ENABLED", Title: "Enable the UART2"},
	{ID: 0x10530006, Type: L, Name: "CFG-UART2-REMAP", Title: "UART2 remapping"},
	{ID: 0x10750001, Type: L, Name: "CFG-UART2INPROT-UBX", Title: "Enable UBX input on UART2"},
	{ID: 0x10750002, Type: L, Name: "CFG-UART2INPROT-NMEA", Title: "Enable NMEA input on UART2"},
	{ID: 0x10750004, Type: L, Name: "CFG-UART2INPROT-RTCM3X", Title: "Enable RTCM3X input on UART2"},
	{ID: 0x10760001, Type: L, Name: "CFG-UART2OUTPROT-UBX", Title: "Enable UBX output on UART2"},
	{ID: 0x10760002, Type: L, Name: "CFG-UART2OUTPROT-NMEA", Title: "Enable NMEA output on UART2"},
	{ID: 0x10760004, Type: L, Name: "CFG-UART2OUTPROT-RTCM3X", Title: "Enable RTCM3X output on UART2"},

	// --- CFG-USB -------------------------------------------------------
	{ID: 0x10650001, Type: L, Name: "CFG-USB-ENABLED", Title: "Enable/disable USB"},
	{ID: 0x10770001, Type: L, Name: "CFG-USBINPROT-UBX", Title: "Enable UBX input on USB"},
	{ID: 0x10770002, Type: L, Name: "CFG-USBINPROT-NMEA", Title: "Enable NMEA input on USB"},
	{ID: 0x10770004, Type: L, Name: "CFG-USBINPROT-RTCM3X", Title: "Enable RTCM3X input on USB"},
	{ID: 0x10780001, Type: L, Name: "CFG-USBOUTPROT-UBX", Title: "Enable UBX output on USB"},
	{ID: 0x10780002, Type: L, Name: "CFG-USBOUTPROT-NMEA", Title: "Enable NMEA output on USB"},
	{ID: 0x10780004, Type: L, Name: "CFG-USBOUTPROT-RTCM3X", Title: "Enable RTCM3X output on USB"},

	// --- CFG-SPI -------------------------------------------------------
	{ID: 0x10640006, Type: L, Name: "CFG-SPI-ENABLED", Title: "Enable SPI"},
	{ID: 0x20640001, Type: U1, Name: "CFG-SPI-MAXFF", Title: "SPI maximum number of 0xFF bytes to receive before switching off"},
	{ID: 0x10790001, Type: L, Name: "CFG-SPIINPROT-UBX", Title: "Enable UBX input on SPI"},
	{ID: 0x10790002, Type: L, Name: "CFG-SPIINPROT-NMEA", Title: "Enable NMEA input on SPI"},
	{ID: 0x10790004, Type: L, Name: "CFG-SPIINPROT-RTCM3X", Title: "Enable RTCM3X input on SPI"},
	{ID: 0x107a0001, Type: L, Name: "CFG-SPIOUTPROT-UBX", Title: "Enable UBX output on SPI"},
	{ID: 0x107a0002, Type: L, Name: "CFG-SPIOUTPROT-NMEA", Title: "Enable NMEA output on SPI"},
	{ID: 0x107a0004, Type: L, Name: "CFG-SPIOUTPROT-RTCM3X", Title: "Enable RTCM3X output on SPI"},

	// --- CFG-I2C -------------------------------------------------------
	{ID: 0x20510001, Type: U1, Name: "CFG-I2C-ADDRESS", Title: "I2C slave address of the receiver (7 bits)"},
	{ID: 0x10510003, Type: L, Name: "CFG-I2C-ENABLED", Title: "Enable I2C"},
	{ID: 0x10710001, Type: L, Name: "CFG-I2CINPROT-UBX", Title: "Enable UBX input on I2C"},
	{ID: 0x10710002, Type: L, Name: "CFG-I2CINPROT-NMEA", Title: "Enable NMEA input on I2C"},
	{ID: 0x10710004, Type: L, Name: "CFG-I2CINPROT-RTCM3X", Title: "Enable RTCM3X input on I2C"},
	{ID: 0x10720001, Type: L, Name: "CFG-I2COUTPROT-UBX", Title: "Enable UBX output on I2C"},
	{ID: 0x10720002, Type: L, Name: "CFG-I2COUTPROT-NMEA", Title: "Enable NMEA output on I2C"},
	{ID: 0x10720004, Type: L, Name: "CFG-I2COUTPROT-RTCM3X", Title: "Enable RTCM3X output on I2C"},

	// --- CFG-RATE --------------------------------------------------------
	{ID: 0x30210001, Type: U2, Name: "CFG-RATE-MEAS", Title: "Nominal time between GNSS measurements", Unit: "ms"},
	{ID: 0x30210002, Type: U2, Name: "CFG-RATE-NAV", Title: "Ratio of number of measurements to number of navigation solutions"},
	{ID: 0x20210003, Type: E1, Name: "CFG-RATE-TIMEREF", Title: "Time system to which measurements are aligned", Consts: []Const{
		{"UTC", "UTC time", 0}, {"GPS", "GPS time", 1}, {"GLO", "GLONASS time", 2}, {"BDS", "BeiDou time", 3}, {"GAL", "Galileo time", 4},
	}},
	{ID: 0x20210004, Type: U1, Name: "CFG-RATE-NAV_PRIO", Title: "Output rate of the navigation-priority output"},

	// --- CFG-NAVSPG ------------------------------------------------------
	{ID: 0x10110013, Type: L, Name: "CFG-NAVSPG-INIFIX3D", Title: "Initial fix must be 3D"},
	{ID: 0x30110017, Type: U2, Name: "CFG-NAVSPG-WKNROLLOVER", Title: "GPS week number rollover value"},
	{ID: 0x20110011, Type: E1, Name: "CFG-NAVSPG-FIXMODE", Title: "Position fix mode", Consts: []Const{
		{"2DONLY", "2D only", 1}, {"3DONLY", "3D only", 2}, {"AUTO", "Automatic 2D/3D", 3},
	}},
	{ID: 0x201100a3, Type: U1, Name: "CFG-NAVSPG-INFIL_MINCNO", Title: "Minimum satellite signal level for navigation", Unit: "dBHz"},
	{ID: 0x301100b1, Type: U2, Name: "CFG-NAVSPG-OUTFIL_PDOP", Title: "Output filter position DOP mask", Scale: "0.1", ScaleFact: 0.1},
	{ID: 0x401100c1, Type: I4, Name: "CFG-NAVSPG-CONSTR_ALT", Title: "Fixed altitude for 2D fix mode", Scale: "0.01", ScaleFact: 0.01, Unit: "m"},
	{ID: 0x20110021, Type: E1, Name: "CFG-NAVSPG-DYNMODEL", Title: "Dynamic platform model", Consts: []Const{
		{"PORT", "Portable", 0}, {"STAT", "Stationary", 2}, {"PED", "Pedestrian", 3}, {"AUTOMOT", "Automotive", 4},
		{"SEA", "Sea", 5}, {"AIR1", "Airborne <1g", 6}, {"AIR2", "Airborne <2g", 7}, {"AIR4", "Airborne <4g", 8},
		{"WRIST", "Wrist-worn watch", 9}, {"BIKE", "Bicycle", 10},
	}},
	{ID: 0x10110025, Type: L, Name: "CFG-NAVSPG-ACKAIDING", Title: "Acknowledge assistance input messages"},
	{ID: 0x10110061, Type: L, Name: "CFG-NAVSPG-USE_USRDAT", Title: "Use user datum"},
	{ID: 0x20110055, Type: I1, Name: "CFG-NAVSPG-INFIL_MINELEV", Title: "Minimum elevation for a GNSS satellite to be used", Unit: "deg"},
	{ID: 0x201100a1, Type: U1, Name: "CFG-NAVSPG-INFIL_NCNOTHRS", Title: "Number of satellites required above CNO threshold"},
	{ID: 0x201100a2, Type: U1, Name: "CFG-NAVSPG-INFIL_CNOTHRS", Title: "CNO threshold", Unit: "dBHz"},
	{ID: 0x301100b2, Type: U2, Name: "CFG-NAVSPG-OUTFIL_TDOP", Title: "Output filter time DOP mask", Scale: "0.1", ScaleFact: 0.1},
	{ID: 0x301100b3, Type: U2, Name: "CFG-NAVSPG-OUTFIL_HDOP", Title: "Output filter horizontal DOP mask", Scale: "0.1", ScaleFact: 0.1},
	{ID: 0x301100b4, Type: U2, Name: "CFG-NAVSPG-OUTFIL_VDOP", Title: "Output filter vertical DOP mask", Scale: "0.1", ScaleFact: 0.1},
	{ID: 0x301100b6, Type: U2, Name: "CFG-NAVSPG-OUTFIL_PACC", Title: "Output filter position accuracy mask", Unit: "m"},
	{ID: 0x301100b7, Type: U2, Name: "CFG-NAVSPG-OUTFIL_TACC", Title: "Output filter time accuracy mask", Unit: "m"},
	{ID: 0x301100b8, Type: U2, Name: "CFG-NAVSPG-OUTFIL_FACC", Title: "Output filter frequency accuracy mask", Scale: "0.01", ScaleFact: 0.01, Unit: "m/s"},
	{ID: 0x201100c4, Type: U1, Name: "CFG-NAVSPG-CONSTR_DGNSSTO", Title: "DGNSS timeout", Unit: "s"},
	{ID: 0x10110010, Type: L, Name: "CFG-NAVSPG-SIGATTCOMP", Title: "Permanently attenuated signal compensation mode"},

	// --- CFG-SIGNAL ------------------------------------------------------
	{ID: 0x1031001f, Type: L, Name: "CFG-SIGNAL-GPS_ENA", Title: "GPS enable"},
	{ID: 0x10310001, Type: L, Name: "CFG-SIGNAL-GPS_L1CA_ENA", Title: "GPS L1C/A"},
	{ID: 0x10310003, Type: L, Name: "CFG-SIGNAL-GPS_L2C_ENA", Title: "GPS L2C"},
	{ID: 0x10310020, Type: L, Name: "CFG-SIGNAL-SBAS_ENA", Title: "SBAS enable"},
	{ID: 0x10310005, Type: L, Name: "CFG-SIGNAL-SBAS_L1CA_ENA", Title: "SBAS L1C/A"},
	{ID: 0x10310021, Type: L, Name: "CFG-SIGNAL-GAL_ENA", Title: "Galileo enable"},
	{ID: 0x10310007, Type: L, Name: "CFG-SIGNAL-GAL_E1_ENA", Title: "Galileo E1"},
	{ID: 0x1031000a, Type: L, Name: "CFG-SIGNAL-GAL_E5B_ENA", Title: "Galileo E5b"},
	{ID: 0x10310022, Type: L, Name: "CFG-SIGNAL-BDS_ENA", Title: "BeiDou enable"},
	{ID: 0x1031000d, Type: L, Name: "CFG-SIGNAL-BDS_B1_ENA", Title: "BeiDou B1I"},
	{ID: 0x1031000e, Type: L, Name: "CFG-SIGNAL-BDS_B2_ENA", Title: "BeiDou B2I"},
	{ID: 0x10310024, Type: L, Name: "CFG-SIGNAL-QZSS_ENA", Title: "QZSS enable"},
	{ID: 0x10310012, Type: L, Name: "CFG-SIGNAL-QZSS_L1CA_ENA", Title: "QZSS L1C/A"},
	{ID: 0x10310025, Type: L, Name: "CFG-SIGNAL-GLO_ENA", Title: "GLONASS enable"},
	{ID: 0x10310018, Type: L, Name: "CFG-SIGNAL-GLO_L1_ENA", Title: "GLONASS L1"},

	// --- CFG-TMODE (time mode / base station) -----------------------------
	{ID: 0x20030001, Type: E1, Name: "CFG-TMODE-MODE", Title: "Receiver mode", Consts: []Const{
		{"DISABLED", "Time mode disabled", 0}, {"SURVEY_IN", "Survey-in mode", 1}, {"FIXED", "Fixed mode", 2},
	}},
	{ID: 0x10030011, Type: L, Name: "CFG-TMODE-POS_TYPE", Title: "Determines whether the ARP position is given in ECEF or LLH"},
	{ID: 0x40030002, Type: I4, Name: "CFG-TMODE-ECEF_X", Title: "ECEF X coordinate of the ARP position", Unit: "cm"},
	{ID: 0x40030003, Type: I4, Name: "CFG-TMODE-ECEF_Y", Title: "ECEF Y coordinate of the ARP position", Unit: "cm"},
	{ID: 0x40030004, Type: I4, Name: "CFG-TMODE-ECEF_Z", Title: "ECEF Z coordinate of the ARP position", Unit: "cm"},
	{ID: 0x40030010, Type: U4, Name: "CFG-TMODE-SVIN_MIN_DUR", Title: "Survey-in minimum duration", Unit: "s"},
	{ID: 0x40030011, Type: U4, Name: "CFG-TMODE-SVIN_ACC_LIMIT", Title: "Survey-in position accuracy limit", Scale: "0.1", ScaleFact: 0.1, Unit: "mm"},

	// --- CFG-INFMSG (informational message enable bitmasks per port) -----
	{ID: 0x20920001, Type: X1, Name: "CFG-INFMSG-UBX_I2C", Title: "Information message enable flags for UBX protocol on I2C", Consts: []Const{
		{"ERROR", "Error-level messages", 0x01}, {"WARNING", "Warning-level messages", 0x02},
		{"NOTICE", "Notice-level messages", 0x04}, {"TEST", "Test-level messages", 0x08}, {"DEBUG", "Debug-level messages", 0x10},
	}},
	{ID: 0x20920002, Type: X1, Name: "CFG-INFMSG-UBX_UART1", Title: "Information message enable flags for UBX protocol on UART1", Consts: []Const{
		{"ERROR", "Error-level messages", 0x01}, {"WARNING", "Warning-level messages", 0x02},
		{"NOTICE", "Notice-level messages", 0x04}, {"TEST", "Test-level messages", 0x08}, {"DEBUG", "Debug-level messages", 0x10},
	}},
	{ID: 0x20920006, Type: X1, Name: "CFG-INFMSG-NMEA_I2C", Title: "Information message enable flags for NMEA protocol on I2C", Consts: []Const{
		{"ERROR", "Error-level messages", 0x01}, {"WARNING", "Warning-level messages", 0x02},
		{"NOTICE", "Notice-level messages", 0x04}, {"TEST", "Test-level messages", 0x08}, {"DEBUG", "Debug-level messages", 0x10},
	}},

	// --- CFG-NMEA ----------------------------------------------------------
	{ID: 0x20930001, Type: E1, Name: "CFG-NMEA-PROTVER", Title: "NMEA protocol version", Consts: []Const{
		{"V21", "NMEA version 2.1", 21}, {"V23", "NMEA version 2.3", 23}, {"V40", "NMEA version 4.0", 40}, {"V411", "NMEA version 4.11", 0x4b},
	}},
	{ID: 0x10930011, Type: L, Name: "CFG-NMEA-COMPAT", Title: "Enable compatibility mode"},
	{ID: 0x10930012, Type: L, Name: "CFG-NMEA-CONSIDER", Title: "Enable considering mode"},
	{ID: 0x20930007, Type: E1, Name: "CFG-NMEA-MAINTALKERID", Title: "Main talker ID", Consts: []Const{
		{"AUTO", "Main talker ID is chosen automatically", 0}, {"GP", "Set main talker ID to GP", 1}, {"GN", "Set main talker ID to GN", 7},
	}},

	// --- CFG-GEOFENCE --------------------------------------------------
	{ID: 0x20240011, Type: U1, Name: "CFG-GEOFENCE-CONFLVL", Title: "Required confidence level for state evaluation"},
	{ID: 0x10240012, Type: L, Name: "CFG-GEOFENCE-USE_PIO", Title: "Use PIO combined fence state output"},
	{ID: 0x20240013, Type: U1, Name: "CFG-GEOFENCE-PINPOL", Title: "PIO pin polarity"},
	{ID: 0x20240020, Type: U1, Name: "CFG-GEOFENCE-PIN", Title: "PIO pin number"},

	// --- CFG-HW ----------------------------------------------------------
	{ID: 0x10a3002e, Type: L, Name: "CFG-HW-ANT_CFG_VOLTCTRL", Title: "Active antenna voltage control enable"},
	{ID: 0x10a3002f, Type: L, Name: "CFG-HW-ANT_CFG_SHORTDET", Title: "Short antenna detection enable"},
	{ID: 0x10a30033, Type: L, Name: "CFG-HW-ANT_CFG_OPENDET", Title: "Open antenna detection enable"},
	{ID: 0x10a30036, Type: L, Name: "CFG-HW-ANT_CFG_PWRDOWN", Title: "Power down antenna on short detection"},
	{ID: 0x20a30002, Type: E1, Name: "CFG-HW-ANT_CFG_VOLTCTRL_CONTROLPIN", Title: "Antenna supply voltage control pin"},

	// --- CFG-ODO/CFG-MOT (odometer) ---------------------------------------
	{ID: 0x10220001, Type: L, Name: "CFG-ODO-USE_ODO", Title: "Use odometer"},
	{ID: 0x10220002, Type: L, Name: "CFG-ODO-USE_COG", Title: "Use low-speed course over ground filter"},
	{ID: 0x20220003, Type: E1, Name: "CFG-ODO-PROFILE", Title: "Odometer profile", Consts: []Const{
		{"RUN", "Running", 0}, {"CYCLING", "Cycling", 1}, {"SWIMMING", "Swimming", 2}, {"CAR", "Car", 3}, {"CUSTOM", "Custom", 4},
	}},
	{ID: 0x20250038, Type: U1, Name: "CFG-MOT-GNSSSPEED_THRS", Title: "GNSS speed threshold below which platform is considered stationary", Unit: "cm/s"},
	{ID: 0x3025003b, Type: U2, Name: "CFG-MOT-GNSSDIST_THRS", Title: "Distance above which GNSS-based stationary motion is exited", Unit: "m"},

	// --- CFG-PM (power management) ----------------------------------------
	{ID: 0x20d00001, Type: E1, Name: "CFG-PM-OPERATEMODE", Title: "Power management operating mode", Consts: []Const{
		{"FULL", "Full power", 0}, {"PSMOO", "Power save on/off", 1}, {"PSMCT", "Power save cyclic tracking", 2},
	}},
	{ID: 0x40d00002, Type: U4, Name: "CFG-PM-POSUPDATEPERIOD", Title: "Position update period", Unit: "s"},
	{ID: 0x40d00003, Type: U4, Name: "CFG-PM-ACQPERIOD", Title: "Acquisition period when no fix", Unit: "s"},
	{ID: 0x40d00004, Type: U4, Name: "CFG-PM-GRIDOFFSET", Title: "Grid offset relative to GPS start of week", Unit: "s"},
	{ID: 0x30d00005, Type: U2, Name: "CFG-PM-ONTIME", Title: "Time to stay in tracking state", Unit: "s"},
	{ID: 0x20d00006, Type: U1, Name: "CFG-PM-MINACQTIME", Title: "Minimal search time", Unit: "s"},

	// --- CFG-TXREADY (ready-to-send pin) -----------------------------------
	{ID: 0x10a20001, Type: L, Name: "CFG-TXREADY-ENABLED", Title: "Enable TX ready feature"},
	{ID: 0x10a20002, Type: L, Name: "CFG-TXREADY-POLARITY", Title: "Polarity of the TX ready pin"},
	{ID: 0x20a20003, Type: U1, Name: "CFG-TXREADY-PIN", Title: "Pin number to use for TX ready feature"},
	{ID: 0x30a20004, Type: U2, Name: "CFG-TXREADY-THRESHOLD", Title: "Threshold, given as number of bytes in the buffer"},

	// --- CFG-SBAS ----------------------------------------------------------
	{ID: 0x10360002, Type: L, Name: "CFG-SBAS-USE_TESTMODE", Title: "Use SBAS data anyway when it is configured to be for test purposes only"},
	{ID: 0x10360003, Type: L, Name: "CFG-SBAS-USE_RANGING", Title: "Use SBAS GEOs as a ranging source (for navigation)"},
	{ID: 0x10360004, Type: L, Name: "CFG-SBAS-USE_DIFFCORR", Title: "Use SBAS differential corrections"},
	{ID: 0x10360005, Type: L, Name: "CFG-SBAS-USE_INTEGRITY", Title: "Use SBAS integrity information"},
	{ID: 0x30360001, Type: X2, Name: "CFG-SBAS-PRNSCANMASK", Title: "PRNs to search for (GEO PRN mask)"},

	// --- CFG-RTCM (RTCM3 input/output behaviour) ---------------------------
	{ID: 0x10490001, Type: L, Name: "CFG-RTCM-DF003_IN_FILTER", Title: "Filter RTCM input messages by DF003 reference station ID"},

	// --- CFG-SPARTN ---------------------------------------------------------
	{ID: 0x20a70001, Type: E1, Name: "CFG-SPARTN-USE_SOURCE", Title: "SPARTN correction data source", Consts: []Const{
		{"IP", "Correction data via IP", 0}, {"LBAND", "Correction data via L-band", 1},
	}},

	// --- CFG-TP (time pulse) -------------------------------------------------
	{ID: 0x40050001, Type: I4, Name: "CFG-TP-PERIOD_TP1", Title: "Time pulse period for time pulse 1", Unit: "us"},
	{ID: 0x40050002, Type: U4, Name: "CFG-TP-LEN_TP1", Title: "Time pulse length for time pulse 1", Unit: "us"},
	{ID: 0x10050007, Type: L, Name: "CFG-TP-TP1_ENA", Title: "Enable the first timepulse"},
	{ID: 0x2005000d, Type: E1, Name: "CFG-TP-TIMEGRID_TP1", Title: "Time grid to use for time pulse 1", Consts: []Const{
		{"UTC", "Align to UTC time", 0}, {"GPS", "Align to GPS time", 1}, {"GLO", "Align to GLONASS time", 2}, {"BDS", "Align to BeiDou time", 3}, {"GAL", "Align to Galileo time", 4},
	}},

	// --- Test fixture item (spec.md §8 S2) ----------------------------------
	{ID: 0x2afe0001, Type: X1, Name: "CFG-UBLOXCFGTEST-X1", Title: "Test item for bitmask stringification", Consts: []Const{
		{"FIRST", "First test bit", 0x01}, {"SECOND", "Second test bit", 0x02}, {"LAST", "Last test bit", 0x80},
	}},
}
