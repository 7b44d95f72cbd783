// Copyright (c) 2026 ircclient authors
// released under the MIT license

package message

import "fmt"

// Reply is a numeric reply code. Codes on the wire are always three
// decimal digits, so valid values are 0-999.
type Reply uint16

// MaxReply is the largest code that fits the three-digit wire form.
const MaxReply Reply = 999

// Numeric replies, as defined by RFC 1459 and RFC 2812.
const (
	// Welcome to the Internet Relay Network <nick>!<user>@<host>
	RPL_WELCOME Reply = 1
	// Your host is <servername>, running version <ver>
	RPL_YOURHOST Reply = 2
	// This server was created <date>
	RPL_CREATED Reply = 3
	// <servername> <version> <available user modes> <available channel modes>
	RPL_MYINFO Reply = 4
	// Try server <server name>, port <port number>
	RPL_BOUNCE Reply = 5

	RPL_TRACELINK       Reply = 200
	RPL_TRACECONNECTING Reply = 201
	RPL_TRACEHANDSHAKE  Reply = 202
	RPL_TRACEUNKNOWN    Reply = 203
	RPL_TRACEOPERATOR   Reply = 204
	RPL_TRACEUSER       Reply = 205
	RPL_TRACESERVER     Reply = 206
	RPL_TRACESERVICE    Reply = 207
	RPL_TRACENEWTYPE    Reply = 208
	RPL_TRACECLASS      Reply = 209
	RPL_TRACERECONNECT  Reply = 210
	RPL_STATSLINKINFO   Reply = 211
	RPL_STATSCOMMANDS   Reply = 212
	RPL_STATSCLINE      Reply = 213
	RPL_STATSNLINE      Reply = 214
	RPL_STATSILINE      Reply = 215
	RPL_STATSKLINE      Reply = 216
	RPL_STATSQLINE      Reply = 217
	RPL_STATSYLINE      Reply = 218
	RPL_ENDOFSTATS      Reply = 219
	// <user mode string>
	RPL_UMODEIS       Reply = 221
	RPL_SERVICEINFO   Reply = 231
	RPL_ENDOFSERVICES Reply = 232
	RPL_SERVICE       Reply = 233
	RPL_SERVLIST      Reply = 234
	RPL_SERVLISTEND   Reply = 235
	RPL_STATSVLINE    Reply = 240
	RPL_STATSLLINE    Reply = 241
	RPL_STATSUPTIME   Reply = 242
	RPL_STATSOLINE    Reply = 243
	RPL_STATSHLINE    Reply = 244
	RPL_STATSPING     Reply = 246
	RPL_STATSBLINE    Reply = 247
	RPL_STATSDLINE    Reply = 250
	// :There are <integer> users and <integer> services on <integer> servers
	RPL_LUSERCLIENT   Reply = 251
	RPL_LUSEROP       Reply = 252
	RPL_LUSERUNKNOWN  Reply = 253
	RPL_LUSERCHANNELS Reply = 254
	RPL_LUSERME       Reply = 255
	RPL_ADMINME       Reply = 256
	RPL_ADMINLOC1     Reply = 257
	RPL_ADMINLOC2     Reply = 258
	RPL_ADMINEMAIL    Reply = 259
	RPL_TRACELOG      Reply = 261
	RPL_TRACEEND      Reply = 262
	RPL_TRACEEND_OLD  Reply = RPL_TRACEEND
	RPL_TRYAGAIN      Reply = 263

	RPL_NONE Reply = 300
	// <nick> :<away message>
	RPL_AWAY Reply = 301
	// :*1<reply> *( " " <reply> )
	RPL_USERHOST Reply = 302
	// :*1<nick> *( " " <nick> )
	RPL_ISON Reply = 303
	// :You are no longer marked as being away
	RPL_UNAWAY Reply = 305
	// :You have been marked as being away
	RPL_NOWAWAY Reply = 306
	// <nick> <user> <host> * :<real name>
	RPL_WHOISUSER Reply = 311
	// <nick> <server> :<server info>
	RPL_WHOISSERVER   Reply = 312
	RPL_WHOISOPERATOR Reply = 313
	RPL_WHOWASUSER    Reply = 314
	RPL_ENDOFWHO      Reply = 315
	RPL_WHOISCHANOP   Reply = 316
	RPL_WHOISIDLE     Reply = 317
	RPL_ENDOFWHOIS    Reply = 318
	RPL_WHOISCHANNELS Reply = 319
	RPL_LISTSTART     Reply = 321
	// <channel> <# visible> :<topic>
	RPL_LIST          Reply = 322
	RPL_LISTEND       Reply = 323
	RPL_CHANNELMODEIS Reply = 324
	RPL_UNIQOPIS      Reply = 325
	// <channel> :No topic is set
	RPL_NOTOPIC Reply = 331
	// <channel> :<topic>
	RPL_TOPIC Reply = 332
	// <channel> <setter> <seconds since the epoch>; not in the RFCs,
	// but sent by every common server implementation.
	RPL_TOPICDATE         Reply = 333
	RPL_INVITING          Reply = 341
	RPL_SUMMONING         Reply = 342
	RPL_INVITELIST        Reply = 346
	RPL_ENDOFINVITELIST   Reply = 347
	RPL_EXCEPTLIST        Reply = 348
	RPL_ENDOFEXCEPTLIST   Reply = 349
	RPL_VERSION           Reply = 351
	RPL_WHOREPLY          Reply = 352
	RPL_NAMREPLY          Reply = 353
	RPL_KILLDONE          Reply = 361
	RPL_CLOSING           Reply = 362
	RPL_CLOSEEND          Reply = 363
	RPL_LINKS             Reply = 364
	RPL_ENDOFLINKS        Reply = 365
	RPL_ENDOFNAMES        Reply = 366
	RPL_BANLIST           Reply = 367
	RPL_ENDOFBANLIST      Reply = 368
	RPL_ENDOFWHOWAS       Reply = 369
	RPL_INFO              Reply = 371
	RPL_MOTD              Reply = 372
	RPL_INFOSTART         Reply = 373
	RPL_ENDOFINFO         Reply = 374
	RPL_MOTDSTART         Reply = 375
	RPL_ENDOFMOTD         Reply = 376
	RPL_YOUREOPER         Reply = 381
	RPL_REHASHING         Reply = 382
	RPL_YOURESERVICE      Reply = 383
	RPL_MYPORTIS          Reply = 384
	RPL_TIME              Reply = 391
	RPL_USERSSTART        Reply = 392
	RPL_USERS             Reply = 393
	RPL_ENDOFUSERS        Reply = 394
	RPL_NOUSERS           Reply = 395
	ERR_NOSUCHNICK        Reply = 401
	ERR_NOSUCHSERVER      Reply = 402
	ERR_NOSUCHCHANNEL     Reply = 403
	ERR_CANNOTSENDTOCHAN  Reply = 404
	ERR_TOOMANYCHANNELS   Reply = 405
	ERR_WASNOSUCHNICK     Reply = 406
	ERR_TOOMANYTARGETS    Reply = 407
	ERR_NOSUCHSERVICE     Reply = 408
	ERR_NOORIGIN          Reply = 409
	ERR_NORECIPIENT       Reply = 411
	ERR_NOTEXTTOSEND      Reply = 412
	ERR_NOTOPLEVEL        Reply = 413
	ERR_WILDTOPLEVEL      Reply = 414
	ERR_BADMASK           Reply = 415
	ERR_UNKNOWNCOMMAND    Reply = 421
	ERR_NOMOTD            Reply = 422
	ERR_NOADMININFO       Reply = 423
	ERR_FILEERROR         Reply = 424
	ERR_NONICKNAMEGIVEN   Reply = 431
	ERR_ERRONEUSNICKNAME  Reply = 432
	ERR_NICKNAMEINUSE     Reply = 433
	ERR_NICKCOLLISION     Reply = 436
	ERR_UNAVAILRESOURCE   Reply = 437
	ERR_USERNOTINCHANNEL  Reply = 441
	ERR_NOTONCHANNEL      Reply = 442
	ERR_USERONCHANNEL     Reply = 443
	ERR_NOLOGIN           Reply = 444
	ERR_SUMMONDISABLED    Reply = 445
	ERR_USERSDISABLED     Reply = 446
	ERR_NOTREGISTERED     Reply = 451
	ERR_NEEDMOREPARAMS    Reply = 461
	ERR_ALREADYREGISTRED  Reply = 462
	ERR_NOPERMFORHOST     Reply = 463
	ERR_PASSWDMISMATCH    Reply = 464
	ERR_YOUREBANNEDCREEP  Reply = 465
	ERR_YOUWILLBEBANNED   Reply = 466
	ERR_KEYSET            Reply = 467
	ERR_CHANNELISFULL     Reply = 471
	ERR_UNKNOWNMODE       Reply = 472
	ERR_INVITEONLYCHAN    Reply = 473
	ERR_BANNEDFROMCHAN    Reply = 474
	ERR_BADCHANNELKEY     Reply = 475
	ERR_BADCHANMASK       Reply = 476
	ERR_NOCHANMODES       Reply = 477
	ERR_BANLISTFULL       Reply = 478
	ERR_NOPRIVILEGES      Reply = 481
	ERR_CHANOPRIVSNEEDED  Reply = 482
	ERR_CANTKILLSERVER    Reply = 483
	ERR_RESTRICTED        Reply = 484
	ERR_UNIQOPPRIVSNEEDED Reply = 485
	ERR_NOOPERHOST        Reply = 491
	ERR_NOSERVICEHOST     Reply = 492
	ERR_UMODEUNKNOWNFLAG  Reply = 501
	ERR_USERSDONTMATCH    Reply = 502
	// freenode-era servers refuse private messages from unregistered
	// users with this code; it is not part of the RFCs.
	ERR_MSGFORBIDDEN Reply = 505
)

var replyNames = map[Reply]string{
	RPL_WELCOME:           "RPL_WELCOME",
	RPL_YOURHOST:          "RPL_YOURHOST",
	RPL_CREATED:           "RPL_CREATED",
	RPL_MYINFO:            "RPL_MYINFO",
	RPL_BOUNCE:            "RPL_BOUNCE",
	RPL_TRACELINK:         "RPL_TRACELINK",
	RPL_TRACECONNECTING:   "RPL_TRACECONNECTING",
	RPL_TRACEHANDSHAKE:    "RPL_TRACEHANDSHAKE",
	RPL_TRACEUNKNOWN:      "RPL_TRACEUNKNOWN",
	RPL_TRACEOPERATOR:     "RPL_TRACEOPERATOR",
	RPL_TRACEUSER:         "RPL_TRACEUSER",
	RPL_TRACESERVER:       "RPL_TRACESERVER",
	RPL_TRACESERVICE:      "RPL_TRACESERVICE",
	RPL_TRACENEWTYPE:      "RPL_TRACENEWTYPE",
	RPL_TRACECLASS:        "RPL_TRACECLASS",
	RPL_TRACERECONNECT:    "RPL_TRACERECONNECT",
	RPL_STATSLINKINFO:     "RPL_STATSLINKINFO",
	RPL_STATSCOMMANDS:     "RPL_STATSCOMMANDS",
	RPL_STATSCLINE:        "RPL_STATSCLINE",
	RPL_STATSNLINE:        "RPL_STATSNLINE",
	RPL_STATSILINE:        "RPL_STATSILINE",
	RPL_STATSKLINE:        "RPL_STATSKLINE",
	RPL_STATSQLINE:        "RPL_STATSQLINE",
	RPL_STATSYLINE:        "RPL_STATSYLINE",
	RPL_ENDOFSTATS:        "RPL_ENDOFSTATS",
	RPL_UMODEIS:           "RPL_UMODEIS",
	RPL_SERVICEINFO:       "RPL_SERVICEINFO",
	RPL_ENDOFSERVICES:     "RPL_ENDOFSERVICES",
	RPL_SERVICE:           "RPL_SERVICE",
	RPL_SERVLIST:          "RPL_SERVLIST",
	RPL_SERVLISTEND:       "RPL_SERVLISTEND",
	RPL_STATSVLINE:        "RPL_STATSVLINE",
	RPL_STATSLLINE:        "RPL_STATSLLINE",
	RPL_STATSUPTIME:       "RPL_STATSUPTIME",
	RPL_STATSOLINE:        "RPL_STATSOLINE",
	RPL_STATSHLINE:        "RPL_STATSHLINE",
	RPL_STATSPING:         "RPL_STATSPING",
	RPL_STATSBLINE:        "RPL_STATSBLINE",
	RPL_STATSDLINE:        "RPL_STATSDLINE",
	RPL_LUSERCLIENT:       "RPL_LUSERCLIENT",
	RPL_LUSEROP:           "RPL_LUSEROP",
	RPL_LUSERUNKNOWN:      "RPL_LUSERUNKNOWN",
	RPL_LUSERCHANNELS:     "RPL_LUSERCHANNELS",
	RPL_LUSERME:           "RPL_LUSERME",
	RPL_ADMINME:           "RPL_ADMINME",
	RPL_ADMINLOC1:         "RPL_ADMINLOC1",
	RPL_ADMINLOC2:         "RPL_ADMINLOC2",
	RPL_ADMINEMAIL:        "RPL_ADMINEMAIL",
	RPL_TRACELOG:          "RPL_TRACELOG",
	RPL_TRACEEND:          "RPL_TRACEEND",
	RPL_TRYAGAIN:          "RPL_TRYAGAIN",
	RPL_NONE:              "RPL_NONE",
	RPL_AWAY:              "RPL_AWAY",
	RPL_USERHOST:          "RPL_USERHOST",
	RPL_ISON:              "RPL_ISON",
	RPL_UNAWAY:            "RPL_UNAWAY",
	RPL_NOWAWAY:           "RPL_NOWAWAY",
	RPL_WHOISUSER:         "RPL_WHOISUSER",
	RPL_WHOISSERVER:       "RPL_WHOISSERVER",
	RPL_WHOISOPERATOR:     "RPL_WHOISOPERATOR",
	RPL_WHOWASUSER:        "RPL_WHOWASUSER",
	RPL_ENDOFWHO:          "RPL_ENDOFWHO",
	RPL_WHOISCHANOP:       "RPL_WHOISCHANOP",
	RPL_WHOISIDLE:         "RPL_WHOISIDLE",
	RPL_ENDOFWHOIS:        "RPL_ENDOFWHOIS",
	RPL_WHOISCHANNELS:     "RPL_WHOISCHANNELS",
	RPL_LISTSTART:         "RPL_LISTSTART",
	RPL_LIST:              "RPL_LIST",
	RPL_LISTEND:           "RPL_LISTEND",
	RPL_CHANNELMODEIS:     "RPL_CHANNELMODEIS",
	RPL_UNIQOPIS:          "RPL_UNIQOPIS",
	RPL_NOTOPIC:           "RPL_NOTOPIC",
	RPL_TOPIC:             "RPL_TOPIC",
	RPL_TOPICDATE:         "RPL_TOPICDATE",
	RPL_INVITING:          "RPL_INVITING",
	RPL_SUMMONING:         "RPL_SUMMONING",
	RPL_INVITELIST:        "RPL_INVITELIST",
	RPL_ENDOFINVITELIST:   "RPL_ENDOFINVITELIST",
	RPL_EXCEPTLIST:        "RPL_EXCEPTLIST",
	RPL_ENDOFEXCEPTLIST:   "RPL_ENDOFEXCEPTLIST",
	RPL_VERSION:           "RPL_VERSION",
	RPL_WHOREPLY:          "RPL_WHOREPLY",
	RPL_NAMREPLY:          "RPL_NAMREPLY",
	RPL_KILLDONE:          "RPL_KILLDONE",
	RPL_CLOSING:           "RPL_CLOSING",
	RPL_CLOSEEND:          "RPL_CLOSEEND",
	RPL_LINKS:             "RPL_LINKS",
	RPL_ENDOFLINKS:        "RPL_ENDOFLINKS",
	RPL_ENDOFNAMES:        "RPL_ENDOFNAMES",
	RPL_BANLIST:           "RPL_BANLIST",
	RPL_ENDOFBANLIST:      "RPL_ENDOFBANLIST",
	RPL_ENDOFWHOWAS:       "RPL_ENDOFWHOWAS",
	RPL_INFO:              "RPL_INFO",
	RPL_MOTD:              "RPL_MOTD",
	RPL_INFOSTART:         "RPL_INFOSTART",
	RPL_ENDOFINFO:         "RPL_ENDOFINFO",
	RPL_MOTDSTART:         "RPL_MOTDSTART",
	RPL_ENDOFMOTD:         "RPL_ENDOFMOTD",
	RPL_YOUREOPER:         "RPL_YOUREOPER",
	RPL_REHASHING:         "RPL_REHASHING",
	RPL_YOURESERVICE:      "RPL_YOURESERVICE",
	RPL_MYPORTIS:          "RPL_MYPORTIS",
	RPL_TIME:              "RPL_TIME",
	RPL_USERSSTART:        "RPL_USERSSTART",
	RPL_USERS:             "RPL_USERS",
	RPL_ENDOFUSERS:        "RPL_ENDOFUSERS",
	RPL_NOUSERS:           "RPL_NOUSERS",
	ERR_NOSUCHNICK:        "ERR_NOSUCHNICK",
	ERR_NOSUCHSERVER:      "ERR_NOSUCHSERVER",
	ERR_NOSUCHCHANNEL:     "ERR_NOSUCHCHANNEL",
	ERR_CANNOTSENDTOCHAN:  "ERR_CANNOTSENDTOCHAN",
	ERR_TOOMANYCHANNELS:   "ERR_TOOMANYCHANNELS",
	ERR_WASNOSUCHNICK:     "ERR_WASNOSUCHNICK",
	ERR_TOOMANYTARGETS:    "ERR_TOOMANYTARGETS",
	ERR_NOSUCHSERVICE:     "ERR_NOSUCHSERVICE",
	ERR_NOORIGIN:          "ERR_NOORIGIN",
	ERR_NORECIPIENT:       "ERR_NORECIPIENT",
	ERR_NOTEXTTOSEND:      "ERR_NOTEXTTOSEND",
	ERR_NOTOPLEVEL:        "ERR_NOTOPLEVEL",
	ERR_WILDTOPLEVEL:      "ERR_WILDTOPLEVEL",
	ERR_BADMASK:           "ERR_BADMASK",
	ERR_UNKNOWNCOMMAND:    "ERR_UNKNOWNCOMMAND",
	ERR_NOMOTD:            "ERR_NOMOTD",
	ERR_NOADMININFO:       "ERR_NOADMININFO",
	ERR_FILEERROR:         "ERR_FILEERROR",
	ERR_NONICKNAMEGIVEN:   "ERR_NONICKNAMEGIVEN",
	ERR_ERRONEUSNICKNAME:  "ERR_ERRONEUSNICKNAME",
	ERR_NICKNAMEINUSE:     "ERR_NICKNAMEINUSE",
	ERR_NICKCOLLISION:     "ERR_NICKCOLLISION",
	ERR_UNAVAILRESOURCE:   "ERR_UNAVAILRESOURCE",
	ERR_USERNOTINCHANNEL:  "ERR_USERNOTINCHANNEL",
	ERR_NOTONCHANNEL:      "ERR_NOTONCHANNEL",
	ERR_USERONCHANNEL:     "ERR_USERONCHANNEL",
	ERR_NOLOGIN:           "ERR_NOLOGIN",
	ERR_SUMMONDISABLED:    "ERR_SUMMONDISABLED",
	ERR_USERSDISABLED:     "ERR_USERSDISABLED",
	ERR_NOTREGISTERED:     "ERR_NOTREGISTERED",
	ERR_NEEDMOREPARAMS:    "ERR_NEEDMOREPARAMS",
	ERR_ALREADYREGISTRED:  "ERR_ALREADYREGISTRED",
	ERR_NOPERMFORHOST:     "ERR_NOPERMFORHOST",
	ERR_PASSWDMISMATCH:    "ERR_PASSWDMISMATCH",
	ERR_YOUREBANNEDCREEP:  "ERR_YOUREBANNEDCREEP",
	ERR_YOUWILLBEBANNED:   "ERR_YOUWILLBEBANNED",
	ERR_KEYSET:            "ERR_KEYSET",
	ERR_CHANNELISFULL:     "ERR_CHANNELISFULL",
	ERR_UNKNOWNMODE:       "ERR_UNKNOWNMODE",
	ERR_INVITEONLYCHAN:    "ERR_INVITEONLYCHAN",
	ERR_BANNEDFROMCHAN:    "ERR_BANNEDFROMCHAN",
	ERR_BADCHANNELKEY:     "ERR_BADCHANNELKEY",
	ERR_BADCHANMASK:       "ERR_BADCHANMASK",
	ERR_NOCHANMODES:       "ERR_NOCHANMODES",
	ERR_BANLISTFULL:       "ERR_BANLISTFULL",
	ERR_NOPRIVILEGES:      "ERR_NOPRIVILEGES",
	ERR_CHANOPRIVSNEEDED:  "ERR_CHANOPRIVSNEEDED",
	ERR_CANTKILLSERVER:    "ERR_CANTKILLSERVER",
	ERR_RESTRICTED:        "ERR_RESTRICTED",
	ERR_UNIQOPPRIVSNEEDED: "ERR_UNIQOPPRIVSNEEDED",
	ERR_NOOPERHOST:        "ERR_NOOPERHOST",
	ERR_NOSERVICEHOST:     "ERR_NOSERVICEHOST",
	ERR_UMODEUNKNOWNFLAG:  "ERR_UMODEUNKNOWNFLAG",
	ERR_USERSDONTMATCH:    "ERR_USERSDONTMATCH",
	ERR_MSGFORBIDDEN:      "ERR_MSGFORBIDDEN",
}

// Known returns true if the code is one of the named replies.
func (reply Reply) Known() bool {
	_, ok := replyNames[reply]
	return ok
}

// Name returns the symbolic name of a known reply, or "" otherwise.
func (reply Reply) Name() string {
	return replyNames[reply]
}

// Code returns the zero-padded three-digit wire form.
func (reply Reply) Code() string {
	return fmt.Sprintf("%03d", uint16(reply))
}

func (reply Reply) String() string {
	if name, ok := replyNames[reply]; ok {
		return fmt.Sprintf("%s(%s)", name, reply.Code())
	}
	return fmt.Sprintf("UNKNOWN(%s)", reply.Code())
}
