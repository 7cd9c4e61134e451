package songs

import "libdb.so/ledsong/ledseq"

// Converted from Hot Cross Buns.mid at 110 BPM.
var hotCrossBuns = ledseq.Sequence{
	{Delay: 35, Channel: 4, On: true},
	{Delay: 510, Channel: 4, On: false},
	{Delay: 35, Channel: 3, On: true},
	{Delay: 510, Channel: 3, On: false},
	{Delay: 0, Channel: 2, On: false},
	{Delay: 35, Channel: 2, On: true},
	{Delay: 0, Channel: 2, On: true},
	{Delay: 510, Channel: 2, On: false},
	{Delay: 545, Channel: 4, On: true},
	{Delay: 545, Channel: 4, On: false},
	{Delay: 0, Channel: 3, On: true},
	{Delay: 545, Channel: 3, On: false},
	{Delay: 0, Channel: 2, On: true},
	{Delay: 545, Channel: 2, On: false},
	{Delay: 545, Channel: 2, On: true},
	{Delay: 136, Channel: 2, On: false},
	{Delay: 136, Channel: 2, On: true},
	{Delay: 136, Channel: 2, On: false},
	{Delay: 136, Channel: 2, On: true},
	{Delay: 136, Channel: 2, On: false},
	{Delay: 136, Channel: 2, On: true},
	{Delay: 136, Channel: 2, On: false},
	{Delay: 136, Channel: 3, On: true},
	{Delay: 136, Channel: 3, On: false},
	{Delay: 136, Channel: 3, On: true},
	{Delay: 136, Channel: 3, On: false},
	{Delay: 136, Channel: 3, On: true},
	{Delay: 136, Channel: 3, On: false},
	{Delay: 136, Channel: 3, On: true},
	{Delay: 136, Channel: 3, On: false},
	{Delay: 136, Channel: 4, On: true},
	{Delay: 545, Channel: 4, On: false},
	{Delay: 0, Channel: 3, On: true},
	{Delay: 545, Channel: 3, On: false},
	{Delay: 0, Channel: 2, On: true},
	{Delay: 545, Channel: 2, On: false},
}
