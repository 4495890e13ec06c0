package brokercsv

// sample is a three-row export in the exact broker format.
const sample = "Date;Account;Asset;BUY/SELL;Nominal;Amount;Price;CCY;Mov.Type;Note\n" +
	"01-09-21;BTC_LEDGER;BTC;BUY;0,013756; $692,66 ; $50.353,30 ; USD ;PTF;\n" +
	"03-10-21;BTC_LEDGER;BTC;BUY;0,0026; $129,07 ; $49.642,31 ; USD ;PTF;\n" +
	"15-11-21;BROKER;AAPL;BUY;5; $875,00 ; $175,00 ; USD ;PTF;Sample Apple buy\n"

// TemplateFilename is the suggested download name for Template.
const TemplateFilename = "portfolio_template.csv"

// Template returns a sample export users can fill in and upload.
func Template() []byte {
	return []byte(sample)
}
