package songs

import "libdb.so/ledsong/ledseq"

var maryHadALittleLambLegacy = ledseq.Sequence{
	{Delay: 0, Channel: 4, On: true},
	{Delay: 273, Channel: 4, On: false},
	{Delay: 0, Channel: 3, On: true},
	{Delay: 273, Channel: 3, On: false},
	{Delay: 0, Channel: 2, On: true},
	{Delay: 273, Channel: 2, On: false},
	{Delay: 0, Channel: 3, On: true},
	{Delay: 273, Channel: 3, On: false},
	{Delay: 0, Channel: 4, On: true},
	{Delay: 273, Channel: 4, On: false},
	{Delay: 0, Channel: 4, On: true},
	{Delay: 273, Channel: 4, On: false},
	{Delay: 0, Channel: 4, On: true},
	{Delay: 273, Channel: 4, On: false},
	{Delay: 273, Channel: 3, On: true},
	{Delay: 273, Channel: 3, On: false},
	{Delay: 0, Channel: 3, On: true},
	{Delay: 273, Channel: 3, On: false},
	{Delay: 0, Channel: 3, On: true},
	{Delay: 273, Channel: 3, On: false},
	{Delay: 273, Channel: 4, On: true},
	{Delay: 273, Channel: 4, On: false},
	{Delay: 0, Channel: 5, On: true},
	{Delay: 273, Channel: 5, On: false},
	{Delay: 0, Channel: 5, On: true},
	{Delay: 273, Channel: 5, On: false},
	{Delay: 273, Channel: 4, On: true},
	{Delay: 273, Channel: 4, On: false},
	{Delay: 0, Channel: 3, On: true},
	{Delay: 273, Channel: 3, On: false},
	{Delay: 0, Channel: 2, On: true},
	{Delay: 273, Channel: 2, On: false},
	{Delay: 0, Channel: 3, On: true},
	{Delay: 273, Channel: 3, On: false},
	{Delay: 0, Channel: 4, On: true},
	{Delay: 273, Channel: 4, On: false},
	{Delay: 0, Channel: 4, On: true},
	{Delay: 273, Channel: 4, On: false},
	{Delay: 0, Channel: 4, On: true},
	{Delay: 273, Channel: 4, On: false},
	{Delay: 273, Channel: 3, On: true},
	{Delay: 273, Channel: 3, On: false},
	{Delay: 0, Channel: 3, On: true},
	{Delay: 273, Channel: 3, On: false},
	{Delay: 0, Channel: 4, On: true},
	{Delay: 273, Channel: 4, On: false},
	{Delay: 0, Channel: 3, On: true},
	{Delay: 273, Channel: 3, On: false},
	{Delay: 0, Channel: 2, On: true},
	{Delay: 273, Channel: 2, On: false},
}
