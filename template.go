package fundwatch

// Starter CSV documents in each accepted upload layout. They are what the
// template command writes for a new user to fill in; parsing either of them
// yields zero validation errors.

// TemplateFull is a starter document in the full layout: the share value is
// supplied directly and further columns carry benchmark index levels.
func TemplateFull() string {
	return `date,principle,share_value,sha,she,csi300
2024-01-02,10000,1.0000,2962.28,9177.11,3322.16
2024-01-03,10000,0.9985,2967.25,9155.88,3316.90
2024-01-04,12000,1.0021,2954.35,9107.40,3313.01
`
}

// TemplateSimple is a starter document in the simplified layout: a sheet
// label, then date, cumulative principal and total market value; the share
// value is derived at parse time.
func TemplateSimple() string {
	return `my portfolio
date,principle,market_value
02/01/2024,10000,10000
03/01/2024,10000,9985
04/01/2024,12000,14025
`
}
