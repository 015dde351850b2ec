package avrconf

const sampleConf = `
# avrdude.conf excerpt
default_programmer = "usbasp";
default_serial     = "/dev/ttyS0";

programmer
  id    = "usbasp";
  desc  = "USBasp, http://www.fischl.de/usbasp/";
  type  = "usbasp";
  usbvid     = 0x16C0; # VOTI
  usbpid     = 0x05DC;
;

/* ATmega328 family */
part
    id               = "m328";
    desc             = "ATmega328";
    has_debugwire    = yes;
    signature        = 0x1e 0x95 0x14;
    chip_erase_delay = 9000;
    resetdelay       = 5;
    pgm_enable       = "1 0 1 0  1 1 0 0    0 1 0 1  0 0 1 1",
                       "x x x x  x x x x    x x x x  x x x x";

    memory "eeprom"
        paged           = no;
        page_size       = 4;
        size            = 1024;
        min_write_delay = 3600;
        read            = "1 0 1 0  0 0 0 0   0 0 0 x  x x a8 a7",
                          "a6 a5 a4 a3  a2 a1 a0   o o o o  o o o o";
    ;

    memory "flash"
        paged     = yes;
        size      = 32768;
        page_size = 128;
        readsize  = 256;
    ;

    memory "lfuse"
        size = 1;
    ;
;

part parent "m328"
    id        = "m328p";
    desc      = "ATmega328P";
    signature = 0x1e 0x95 0x0F;
;

part parent "m328p" // inherits everything but the signature
    id        = "m328pb";
    desc      = "ATmega328PB";
    signature = 0x1e 0x95 0x16;
    memory "eeprom"
        size = 0x800;
    ;
;
`
