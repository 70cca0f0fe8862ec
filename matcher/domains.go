package matcher

// Bundled dataset of known disposable email domains. Only the key set
// matters to matching; the metadata values are placeholders kept for
// parity with caller-supplied configs.
var defaultDomainList = []string{
	// Mailinator
	"mailinator.com",
	"mailinator.net",
	"mailinator.org",
	"mailinater.com",
	"mailinator2.com",
	"sogetthis.com",
	"spamherelots.com",
	"thisisnotmyrealemail.com",

	// Guerrilla Mail
	"guerrillamail.com",
	"guerrillamail.net",
	"guerrillamail.org",
	"guerrillamail.biz",
	"guerrillamail.de",
	"guerrillamailblock.com",
	"grr.la",
	"sharklasers.com",
	"spam4.me",

	// 10 Minute Mail family
	"10minutemail.com",
	"10minutemail.net",
	"10minemail.com",
	"20minutemail.com",
	"30minutemail.com",
	"10minutemail.co.za",

	// Temp-Mail
	"temp-mail.org",
	"temp-mail.ru",
	"tempmail.com",
	"tempmail.net",
	"tempmail.de",
	"tempmailer.com",
	"tempmailer.de",
	"temporarymail.net",
	"tempinbox.com",
	"tempmailaddress.com",

	// YOPmail
	"yopmail.com",
	"yopmail.fr",
	"yopmail.net",
	"cool.fr.nf",
	"jetable.fr.nf",
	"courriel.fr.nf",
	"moncourrier.fr.nf",

	// Dispostable / Discard
	"dispostable.com",
	"discard.email",
	"discardmail.com",
	"discardmail.de",
	"spambog.com",
	"spambog.de",
	"spambog.ru",

	// Trashmail
	"trashmail.com",
	"trashmail.de",
	"trashmail.me",
	"trashmail.net",
	"trash-mail.com",
	"trash-mail.de",
	"kurzepost.de",
	"wegwerfmail.de",
	"wegwerfmail.net",
	"wegwerfmail.org",

	// Mailnesia / Mailcatch
	"mailnesia.com",
	"mailcatch.com",
	"mailnull.com",
	"mailexpire.com",
	"maileater.com",

	// GetNada / Inboxes
	"getnada.com",
	"nada.email",
	"inboxbear.com",
	"getairmail.com",

	// Fakeinbox family
	"fakeinbox.com",
	"fakemailgenerator.com",
	"fakemail.fr",
	"emailfake.com",
	"email-fake.com",
	"fake-mail.net",

	// Throwaway / burner services
	"throwawaymail.com",
	"throwam.com",
	"burnermail.io",
	"mytemp.email",
	"mohmal.com",
	"maildrop.cc",
	"mailsac.com",
	"moakt.com",
	"tmpmail.org",
	"tmpmail.net",
	"tmpeml.com",
	"tmpbox.net",

	// Spam-oriented catchalls
	"spamgourmet.com",
	"spamex.com",
	"spamfree24.org",
	"spaml.com",
	"spamspot.com",
	"antispam.de",
	"nospam.ze.tc",
	"nomail.xl.cx",
	"nowmymail.com",

	// Misc well-known
	"mintemail.com",
	"mt2015.com",
	"mytrashmail.com",
	"no-spam.ws",
	"objectmail.com",
	"obobbo.com",
	"onewaymail.com",
	"deadaddress.com",
	"despam.it",
	"devnullmail.com",
	"dodgeit.com",
	"dontreg.com",
	"dumpyemail.com",
	"e4ward.com",
	"emailias.com",
	"emailwarden.com",
	"ephemail.net",
	"explodemail.com",
	"fastacura.com",
	"filzmail.com",
	"fizmail.com",
	"frapmail.com",
	"gishpuppy.com",
	"great-host.in",
	"haltospam.com",
	"hochsitze.com",
	"hulapla.de",
	"ieatspam.eu",
	"imails.info",
	"incognitomail.org",
	"ipoo.org",
	"irish2me.com",
	"junk1e.com",
	"kasmail.com",
	"killmail.net",
	"klzlk.com",
	"kulturbetrieb.info",
	"letthemeatspam.com",
	"lhsdv.com",
	"lifebyfood.com",
	"lookugly.com",
	"lopl.co.cc",
	"lr78.com",
	"maboard.com",
	"mail-temporaire.fr",
	"mail.by",
	"mail4trash.com",
	"mailbidon.com",
	"mailblocks.com",
	"mailfreeonline.com",
	"mailin8r.com",
	"mailmetrash.com",
	"mailmoat.com",
	"mailshell.com",
	"mailsiphon.com",
	"mailslapping.com",
	"mailzilla.com",
	"mbx.cc",
	"mega.zik.dj",
	"meltmail.com",
	"mierdamail.com",
	"ministry-of-silly-walks.de",
	"mjukglass.nu",
	"mobi.web.id",
	"mobileninja.co.uk",
	"monemail.fr.nf",
	"msa.minsmail.com",
	"mypartyclip.de",
	"myphantomemail.com",
	"myspaceinc.com",
	"netmails.net",
	"neverbox.com",
	"nincsmail.hu",
	"nnh.com",
	"noblepioneer.com",
	"nospam4.us",
	"nospamfor.us",
	"notmailinator.com",
	"nurfuerspam.de",
	"nwldx.com",
	"odnorazovoe.ru",
	"oneoffemail.com",
	"onlatedotcom.info",
	"online.ms",
	"oopi.org",
	"ordinaryamerican.net",
	"otherinbox.com",
	"ourklips.com",
	"outlawspam.com",
	"ovpn.to",
	"owlpic.com",
	"pancakemail.com",
	"pjjkp.com",
	"plexolan.de",
	"poczta.onet.pl",
	"politikerclub.de",
	"poofy.org",
	"pookmail.com",
	"privacy.net",
	"proxymail.eu",
	"prtnx.com",
	"punkass.com",
	"putthisinyourspamdatabase.com",
	"quickinbox.com",
	"rcpt.at",
	"recode.me",
	"recursor.net",
	"regbypass.com",
	"rmqkr.net",
	"rppkn.com",
	"rtrtr.com",
	"s0ny.net",
	"safe-mail.net",
	"safetymail.info",
	"safetypost.de",
	"sandelf.de",
	"saynotospams.com",
	"selfdestructingmail.com",
	"sendspamhere.com",
	"shieldemail.com",
	"shiftmail.com",
	"shitmail.me",
	"shortmail.net",
	"sibmail.com",
	"skeefmail.com",
	"slaskpost.se",
	"slopsbox.com",
	"smellfear.com",
	"snakemail.com",
	"sneakemail.com",
	"snkmail.com",
	"sofimail.com",
	"sofort-mail.de",
	"soodonims.com",
	"spam.la",
	"spam.su",
	"spamavert.com",
	"spambob.com",
	"spambob.net",
	"spambob.org",
	"spambox.info",
	"spambox.us",
	"spamcannon.com",
	"spamcannon.net",
	"spamcero.com",
	"spamcon.org",
	"spamcorptastic.com",
	"spamcowboy.com",
	"spamcowboy.net",
	"spamcowboy.org",
	"spamday.com",
	"spamfree.eu",
	"spamfree24.com",
	"spamfree24.de",
	"spamfree24.eu",
	"spamfree24.info",
	"spamfree24.net",
	"spamgoes.in",
	"spamhole.com",
	"spamify.com",
	"spaminator.de",
	"spamkill.info",
	"spamlot.net",
	"spammotel.com",
	"spamobox.com",
	"spamoff.de",
	"spamslicer.com",
	"spamstack.net",
	"spamthis.co.uk",
	"spamthisplease.com",
	"spamtrail.com",
	"speed.1s.fr",
	"supergreatmail.com",
	"supermailer.jp",
	"suremail.info",
	"teewars.org",
	"teleworm.com",
	"teleworm.us",
	"thankyou2010.com",
	"thc.st",
	"thelimestones.com",
	"tilien.com",
	"tradermail.info",
	"trash2009.com",
	"trashdevil.com",
	"trashemail.de",
	"trashymail.com",
	"trialmail.de",
	"trillianpro.com",
	"turual.com",
	"twinmail.de",
	"tyldd.com",
	"uggsrock.com",
	"upliftnow.com",
	"uplipht.com",
	"venompen.com",
	"veryrealemail.com",
	"viditag.com",
	"viewcastmedia.com",
	"viewcastmedia.net",
	"viewcastmedia.org",
	"webemail.me",
	"webm4il.info",
	"wh4f.org",
	"whyspam.me",
	"willselfdestruct.com",
	"winemaven.info",
	"wronghead.com",
	"wuzup.net",
	"wuzupmail.net",
	"xagloo.com",
	"xemaps.com",
	"xents.com",
	"xmaily.com",
	"xoxy.net",
	"yep.it",
	"yogamaven.com",
	"yopweb.com",
	"youmailr.com",
	"yuurok.com",
	"zehnminutenmail.de",
	"zippymail.info",
	"zoemail.net",
	"zomg.info",
}

var defaultDomains = make(map[string]Metadata, len(defaultDomainList))

func init() {
	for _, d := range defaultDomainList {
		defaultDomains[d] = Metadata{}
	}
}

var defaultConfig = NewConfig(defaultDomains)

// DefaultConfig returns the bundled dataset of known fake domains. The
// returned Config is shared and must not be mutated; callers wanting a
// different dataset build their own with NewConfig.
func DefaultConfig() *Config {
	return defaultConfig
}

// DefaultDomainCount returns the number of domains in the bundled
// dataset.
func DefaultDomainCount() int {
	return len(defaultDomains)
}
