package songs

import "libdb.so/ledsong/ledseq"

// Converted from Mary Had a Little Lamb.mid at 55 BPM.
var maryHadALittleLamb = ledseq.Sequence{
	{Delay: 35, Channel: 4, On: true},
	{Delay: 238, Channel: 4, On: false},
	{Delay: 35, Channel: 3, On: true},
	{Delay: 238, Channel: 3, On: false},
	{Delay: 35, Channel: 2, On: true},
	{Delay: 238, Channel: 2, On: false},
	{Delay: 0, Channel: 3, On: true},
	{Delay: 273, Channel: 3, On: false},
	{Delay: 0, Channel: 4, On: true},
	{Delay: 273, Channel: 4, On: false},
	{Delay: 35, Channel: 4, On: true},
	{Delay: 238, Channel: 4, On: false},
	{Delay: 35, Channel: 4, On: true},
	{Delay: 238, Channel: 4, On: false},
	{Delay: 273, Channel: 3, On: true},
	{Delay: 273, Channel: 3, On: false},
	{Delay: 35, Channel: 3, On: true},
	{Delay: 238, Channel: 3, On: false},
	{Delay: 35, Channel: 3, On: true},
	{Delay: 238, Channel: 3, On: false},
	{Delay: 273, Channel: 4, On: true},
	{Delay: 273, Channel: 4, On: false},
	{Delay: 35, Channel: 5, On: true},
	{Delay: 238, Channel: 5, On: false},
	{Delay: 35, Channel: 5, On: true},
	{Delay: 238, Channel: 5, On: false},
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
	{Delay: 35, Channel: 4, On: true},
	{Delay: 238, Channel: 4, On: false},
	{Delay: 35, Channel: 4, On: true},
	{Delay: 238, Channel: 4, On: false},
	{Delay: 273, Channel: 3, On: true},
	{Delay: 273, Channel: 3, On: false},
	{Delay: 35, Channel: 3, On: true},
	{Delay: 238, Channel: 3, On: false},
	{Delay: 0, Channel: 4, On: true},
	{Delay: 273, Channel: 4, On: false},
	{Delay: 0, Channel: 3, On: true},
	{Delay: 273, Channel: 3, On: false},
	{Delay: 0, Channel: 2, On: true},
	{Delay: 273, Channel: 2, On: false},
}
